package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTVerifierRoundTrip(t *testing.T) {
	v := NewJWTVerifier("test-secret")

	token, err := v.Generate("a@x.com", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := v.VerifyIDToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestJWTVerifierRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTVerifier("secret-a").Generate("a@x.com", "")
	require.NoError(t, err)

	_, err = NewJWTVerifier("secret-b").VerifyIDToken(context.Background(), token)
	assert.Error(t, err)
}

func TestJWTVerifierRejectsGarbage(t *testing.T) {
	_, err := NewJWTVerifier("secret").VerifyIDToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestGenerateRequiresEmail(t *testing.T) {
	_, err := NewJWTVerifier("secret").Generate("", "")
	assert.Error(t, err)
}
