package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthToken(t *testing.T) {
	token, plaintext := NewAuthToken(42, "api")

	require.NotNil(t, token)
	require.NotEmpty(t, plaintext)

	assert.Equal(t, uint(42), token.UserID)
	assert.Equal(t, "api", token.Name)
	assert.True(t, strings.HasPrefix(plaintext, "42|"))
	assert.Len(t, token.TokenHash, 64)
	assert.Equal(t, HashToken(plaintext), token.TokenHash)
	assert.Nil(t, token.LastUsedAt)
}

func TestNewAuthTokenUnique(t *testing.T) {
	_, first := NewAuthToken(1, "api")
	_, second := NewAuthToken(1, "api")

	assert.NotEqual(t, first, second)
}

func TestHashTokenTrimsWhitespace(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("  abc \n"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
}

func TestAuthTokenTouch(t *testing.T) {
	token, _ := NewAuthToken(5, "api")
	require.Nil(t, token.LastUsedAt)

	token.Touch()

	assert.NotNil(t, token.LastUsedAt)
}
