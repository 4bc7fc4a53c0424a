package steam

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/yohcop/openid-go"

	"github.com/tympollack/keep-rocket-league/internal/auth"
)

const (
	providerName   = "steam"
	openIDEndpoint = "https://steamcommunity.com/openid"
)

// Provider authenticates users against Steam's OpenID 2.0 endpoint.
// The cryptographic handshake itself is owned by the openid library;
// this type only adapts it to the Verifier capability interface.
type Provider struct {
	oid       *openid.OpenID
	returnURL string
	realm     string
	discovery openid.DiscoveryCache
	nonces    openid.NonceStore
}

func New(returnURL, realm string) (*Provider, error) {
	if returnURL == "" || realm == "" {
		return nil, errors.New("steam openid config missing required fields")
	}

	return &Provider{
		oid:       openid.NewOpenID(cleanhttp.DefaultClient()),
		returnURL: returnURL,
		realm:     realm,
		discovery: openid.NewSimpleDiscoveryCache(),
		nonces:    openid.NewSimpleNonceStore(),
	}, nil
}

// Name returns the provider identifier used by the registry.
func (p *Provider) Name() string {
	return providerName
}

// AuthURL builds the Steam redirect URL via OpenID discovery.
func (p *Provider) AuthURL() (string, error) {
	u, err := p.oid.RedirectURL(openIDEndpoint, p.returnURL, p.realm)
	if err != nil {
		return "", fmt.Errorf("steam openid redirect url: %w", err)
	}
	return u, nil
}

// Verify checks the signed assertion Steam delivered via the callback
// query string. The nonce store rejects replayed assertions.
func (p *Provider) Verify(_ context.Context, r *http.Request) (*auth.Assertion, error) {
	requestURL := p.returnURL
	if q := r.URL.RawQuery; q != "" {
		requestURL += "?" + q
	}

	id, err := p.oid.Verify(requestURL, p.discovery, p.nonces)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrAssertionInvalid, err)
	}

	return &auth.Assertion{
		ClaimedID: id,
		Claims:    claimsFromQuery(r.URL.Query()),
	}, nil
}

func claimsFromQuery(q url.Values) map[string]string {
	claims := make(map[string]string)
	for k, vs := range q {
		if strings.HasPrefix(k, "openid.") && len(vs) > 0 {
			claims[k] = vs[0]
		}
	}
	return claims
}
