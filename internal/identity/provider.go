// Package identity defines the contract this service consumes from its
// identity provider: creating user identities and verifying bearer tokens.
// Token issuance is the provider's concern; the HTTP surface never exposes it.
package identity

import (
	"context"
	"errors"

	"github.com/vasapolrittideah/health-profile-api/internal/model"
)

// Identity is the decoded result of a successful token verification.
type Identity struct {
	UID   string
	Email string
}

// CreateUserParams defines the parameters for creating a new identity.
type CreateUserParams struct {
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=8"`
	DisplayName string `validate:"required"`
}

// Provider creates user identities and verifies bearer tokens.
type Provider interface {
	CreateUser(ctx context.Context, params CreateUserParams) (*model.Account, error)
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

var (
	ErrEmailAlreadyInUse  = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
