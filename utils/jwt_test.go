package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("u1", "ada@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	require.Equal(t, "u1", id)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("u1", "ada@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	require.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ExtractIDFromToken("not.a.token")
	require.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	h1 := HashToken("abc")
	h2 := HashToken("abc")
	require.Equal(t, h1, h2)
	require.Len(t, h1, 64)
	require.NotEqual(t, h1, HashToken("abd"))
}
