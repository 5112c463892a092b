package jwtutil

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("super-secret", time.Hour, 42)
	require.NoError(t, err)

	claims, err := ParseToken("super-secret", tok)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.User.ID)
}

func TestGenerateAndParse_NoExpiry(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("super-secret", 0, 7)
	require.NoError(t, err)

	claims, err := ParseToken("super-secret", tok)
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.User.ID)
	require.Nil(t, claims.ExpiresAt)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("secret", -1*time.Second, 1)
	require.NoError(t, err)

	_, err = ParseToken("secret", tok)
	require.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("right-secret", time.Hour, 2)
	require.NoError(t, err)

	_, err = ParseToken("wrong-secret", tok)
	require.Error(t, err)
}

func TestParseToken_Tampered(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("secret", time.Hour, 3)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJ1c2VyIjp7ImlkIjo5OTl9fQ." + parts[2]

	_, err = ParseToken("secret", tampered)
	require.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("secret", "not.a.jwt")
	require.Error(t, err)
}
