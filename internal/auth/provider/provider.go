package provider

import (
	"context"
	"net/http"

	"github.com/tympollack/keep-rocket-league/internal/auth"
)

// Verifier defines the contract every external SSO provider must
// implement. Implementations return identity facts only and must not
// perform account creation, profile lookup, or session management.
type Verifier interface {
	// Name returns the provider identifier (e.g. "steam").
	Name() string

	// AuthURL returns the provider URL the browser is redirected to
	// so the provider can authenticate the user.
	AuthURL() (string, error)

	// Verify validates the provider's callback request and returns the
	// verified assertion, or auth.ErrAssertionInvalid if the assertion
	// is forged, expired, or replayed.
	Verify(ctx context.Context, r *http.Request) (*auth.Assertion, error)
}
