package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	iss := NewJWTIssuer([]byte("test-secret"), time.Hour)

	signed, err := iss.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	sub, err := iss.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "user-123", sub)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewJWTIssuer([]byte("secret-a"), time.Hour).Issue("user-123")
	require.NoError(t, err)

	_, err = NewJWTIssuer([]byte("secret-b"), time.Hour).Verify(signed)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signed, err := NewJWTIssuer([]byte("test-secret"), -time.Minute).Issue("user-123")
	require.NoError(t, err)

	_, err = NewJWTIssuer([]byte("test-secret"), time.Hour).Verify(signed)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewJWTIssuer([]byte("test-secret"), time.Hour).Verify("not-a-token")
	require.Error(t, err)
}
