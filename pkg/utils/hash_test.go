package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGravatarURLStable(t *testing.T) {
	a := GravatarURL("User@Mail.com ")
	b := GravatarURL("user@mail.com")
	assert.Equal(t, a, b)
	assert.Contains(t, a, "gravatar.com/avatar/")
}
