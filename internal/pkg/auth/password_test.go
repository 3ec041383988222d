package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin124"))
	assert.False(t, CheckPassword(hash, ""))
}
