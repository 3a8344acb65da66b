package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims(uid string, expiresIn time.Duration) IdentityClaims {
	now := time.Now()
	return IdentityClaims{
		UID:   uid,
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			Issuer:    "test-issuer",
			Audience:  jwt.ClaimStrings{"test-audience"},
		},
	}
}

func TestJWTAuthenticator_RoundTrip(t *testing.T) {
	a := NewJWTAuthenticator("test-audience", "test-issuer")

	token, err := a.GenerateToken(testClaims("uid-1", time.Hour), "secret")
	require.NoError(t, err)

	parsed := &IdentityClaims{}
	_, err = a.ValidateTokenWithClaims(token, "secret", parsed)
	require.NoError(t, err)

	assert.Equal(t, "uid-1", parsed.UID)
	assert.Equal(t, "user@example.com", parsed.Email)
}

func TestJWTAuthenticator_WrongSecret(t *testing.T) {
	a := NewJWTAuthenticator("test-audience", "test-issuer")

	token, err := a.GenerateToken(testClaims("uid-1", time.Hour), "secret")
	require.NoError(t, err)

	_, err = a.ValidateTokenWithClaims(token, "other-secret", &IdentityClaims{})
	assert.Error(t, err)
}

func TestJWTAuthenticator_ExpiredToken(t *testing.T) {
	a := NewJWTAuthenticator("test-audience", "test-issuer")

	token, err := a.GenerateToken(testClaims("uid-1", -time.Minute), "secret")
	require.NoError(t, err)

	_, err = a.ValidateTokenWithClaims(token, "secret", &IdentityClaims{})
	assert.Error(t, err)
}

func TestJWTAuthenticator_WrongAudience(t *testing.T) {
	a := NewJWTAuthenticator("other-audience", "test-issuer")

	token, err := a.GenerateToken(testClaims("uid-1", time.Hour), "secret")
	require.NoError(t, err)

	_, err = a.ValidateTokenWithClaims(token, "secret", &IdentityClaims{})
	assert.Error(t, err)
}

func TestJWTAuthenticator_Garbage(t *testing.T) {
	a := NewJWTAuthenticator("test-audience", "test-issuer")

	_, err := a.ValidateTokenWithClaims("not-a-jwt", "secret", &IdentityClaims{})
	assert.Error(t, err)
}
