package auth

import "errors"

var (
	// ErrAssertionInvalid marks a callback the provider rejects:
	// forged, expired, or replayed. A user-side failure.
	ErrAssertionInvalid = errors.New("auth: assertion invalid")

	// ErrMalformedAssertion marks a verified assertion whose identity
	// URL cannot be parsed. The provider broke its contract; logged
	// distinctly from ErrAssertionInvalid.
	ErrMalformedAssertion = errors.New("auth: malformed assertion")
)

// Assertion is a verified identity assertion from an SSO provider.
// It contains facts only, no decisions, and lives for one request.
type Assertion struct {
	ClaimedID string            // identity URL, e.g. https://steamcommunity.com/openid/id/7656...
	Claims    map[string]string // raw provider-supplied claims
}
