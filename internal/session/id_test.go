package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	t.Parallel()

	a, err := GenerateID()
	require.NoError(t, err)
	require.NotEmpty(t, a)

	b, err := GenerateID()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	// 32 bytes base64url without padding
	assert.Len(t, a, 43)
}
