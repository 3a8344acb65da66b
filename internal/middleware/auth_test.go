package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/health-profile-api/internal/identity"
	"github.com/vasapolrittideah/health-profile-api/internal/model"
)

// fakeProvider accepts a single known token.
type fakeProvider struct {
	token string
	ident *identity.Identity
}

func (p *fakeProvider) CreateUser(_ context.Context, _ identity.CreateUserParams) (*model.Account, error) {
	return nil, nil
}

func (p *fakeProvider) VerifyToken(_ context.Context, token string) (*identity.Identity, error) {
	if token != p.token {
		return nil, identity.ErrInvalidToken
	}
	return p.ident, nil
}

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := GetIdentity(r.Context())
		require.True(t, ok)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"uid": ident.UID})
	})
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	provider := &fakeProvider{token: "good-token"}
	h := Authenticate(provider)(protectedHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rec))
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	provider := &fakeProvider{token: "good-token"}
	h := Authenticate(provider)(protectedHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rec))
}

func TestAuthenticate_EmptyToken(t *testing.T) {
	provider := &fakeProvider{token: "good-token"}
	h := Authenticate(provider)(protectedHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rec))
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	provider := &fakeProvider{token: "good-token"}
	h := Authenticate(provider)(protectedHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeError(t, rec))
}

func TestAuthenticate_ValidToken(t *testing.T) {
	provider := &fakeProvider{
		token: "good-token",
		ident: &identity.Identity{UID: "uid-1", Email: "a@x.com"},
	}
	h := Authenticate(provider)(protectedHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "uid-1", body["uid"])
}

func TestGetIdentity_NotSet(t *testing.T) {
	ident, ok := GetIdentity(context.Background())
	assert.False(t, ok)
	assert.Nil(t, ident)
}
