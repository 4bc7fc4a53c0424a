package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteamID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		claimedID string
		want      string
	}{
		{
			name:      "steam identity url",
			claimedID: "https://steamcommunity.com/openid/id/76561198000000001",
			want:      "76561198000000001",
		},
		{
			name:      "generic provider url",
			claimedID: "https://provider.example/openid/id/76561198000000001",
			want:      "76561198000000001",
		},
		{
			name:      "single separator",
			claimedID: "/76561198000000001",
			want:      "76561198000000001",
		},
		{
			name:      "final segment without further separators",
			claimedID: "https://provider.example/abc123",
			want:      "abc123",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SteamID(tt.claimedID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSteamID_Malformed(t *testing.T) {
	t.Parallel()

	t.Run("no separator at all", func(t *testing.T) {
		t.Parallel()

		got, err := SteamID("76561198000000001")
		require.ErrorIs(t, err, ErrMalformedAssertion)
		assert.Empty(t, got)
	})

	t.Run("trailing separator", func(t *testing.T) {
		t.Parallel()

		got, err := SteamID("https://steamcommunity.com/openid/id/")
		require.ErrorIs(t, err, ErrMalformedAssertion)
		assert.Empty(t, got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		_, err := SteamID("")
		require.ErrorIs(t, err, ErrMalformedAssertion)
	})
}

func TestSteamID_NoNormalization(t *testing.T) {
	t.Parallel()

	got, err := SteamID("https://provider.example/openid/id/ AbC123 ")
	require.NoError(t, err)
	assert.Equal(t, " AbC123 ", got)
}
