package auth

import (
	"fmt"
	"strings"
)

// SteamID derives the canonical account identifier from an identity URL:
// the substring after the last path separator. Provider URLs always
// contain at least one separator, so a bare token is a contract breach,
// not something to pass through truncated.
//
// No normalization is applied; identifiers are compared byte-for-byte
// downstream.
func SteamID(claimedID string) (string, error) {
	i := strings.LastIndexByte(claimedID, '/')
	if i < 0 {
		return "", fmt.Errorf("%w: identity url %q has no path separator", ErrMalformedAssertion, claimedID)
	}
	id := claimedID[i+1:]
	if id == "" {
		return "", fmt.Errorf("%w: identity url %q has empty final segment", ErrMalformedAssertion, claimedID)
	}
	return id, nil
}
