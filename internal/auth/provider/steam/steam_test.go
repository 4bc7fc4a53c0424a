package steam

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		p, err := New("https://example.com/auth/steam/return", "https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, "steam", p.Name())
	})

	t.Run("missing return url", func(t *testing.T) {
		t.Parallel()

		_, err := New("", "https://example.com/")
		require.Error(t, err)
	})

	t.Run("missing realm", func(t *testing.T) {
		t.Parallel()

		_, err := New("https://example.com/auth/steam/return", "")
		require.Error(t, err)
	})
}

func TestClaimsFromQuery(t *testing.T) {
	t.Parallel()

	q := url.Values{}
	q.Set("openid.mode", "id_res")
	q.Set("openid.identity", "https://steamcommunity.com/openid/id/76561198000000001")
	q.Set("openid.sig", "abc")
	q.Set("unrelated", "x")

	claims := claimsFromQuery(q)

	assert.Equal(t, "id_res", claims["openid.mode"])
	assert.Equal(t, "https://steamcommunity.com/openid/id/76561198000000001", claims["openid.identity"])
	assert.Equal(t, "abc", claims["openid.sig"])
	assert.NotContains(t, claims, "unrelated")
}
