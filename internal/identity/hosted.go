package identity

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/health-profile-api/internal/auth"
	"github.com/vasapolrittideah/health-profile-api/internal/config"
	"github.com/vasapolrittideah/health-profile-api/internal/model"
	"github.com/vasapolrittideah/health-profile-api/internal/repository"
	"github.com/vasapolrittideah/health-profile-api/internal/security"
)

// HostedProvider is the default identity provider. It keeps account records
// in MongoDB and issues HS256 JWTs. Input policy (email format, password
// length) is enforced here, not in the HTTP layer.
type HostedProvider struct {
	accountRepo repository.AccountRepository
	jwtAuth     auth.JWTAuthenticator
	tokenCfg    config.TokenConfig
	validate    *validator.Validate
	translator  ut.Translator
}

// NewHostedProvider creates a HostedProvider backed by the given account repository.
func NewHostedProvider(
	logger *zerolog.Logger,
	accountRepo repository.AccountRepository,
	jwtAuth auth.JWTAuthenticator,
	tokenCfg config.TokenConfig,
) *HostedProvider {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")

	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		logger.Fatal().Err(err).Msg("failed to register validator translations")
	}

	return &HostedProvider{
		accountRepo: accountRepo,
		jwtAuth:     jwtAuth,
		tokenCfg:    tokenCfg,
		validate:    validate,
		translator:  translator,
	}
}

// CreateUser validates the registration parameters and creates a new account.
// The returned account carries the newly assigned UID.
func (p *HostedProvider) CreateUser(ctx context.Context, params CreateUserParams) (*model.Account, error) {
	if err := p.validate.Struct(params); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			return nil, errors.New(validationErrs[0].Translate(p.translator))
		}

		return nil, err
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	account, err := p.accountRepo.CreateAccount(ctx, &model.Account{
		UID:          uuid.NewString(),
		Email:        params.Email,
		PasswordHash: passwordHash,
		DisplayName:  params.DisplayName,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyInUse
		}

		return nil, err
	}

	return account, nil
}

// VerifyToken validates a bearer token issued by this provider and returns
// the decoded identity.
func (p *HostedProvider) VerifyToken(_ context.Context, token string) (*Identity, error) {
	claims := &auth.IdentityClaims{}
	if _, err := p.jwtAuth.ValidateTokenWithClaims(token, p.tokenCfg.Secret, claims); err != nil {
		return nil, err
	}

	if claims.UID == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{UID: claims.UID, Email: claims.Email}, nil
}

// IssueToken exchanges email and password credentials for a signed bearer
// token. Clients obtain tokens through this path out of band; the profile
// API itself only ever verifies them.
func (p *HostedProvider) IssueToken(ctx context.Context, email, password string) (string, error) {
	account, err := p.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}

		return "", err
	}

	if ok, err := security.VerifyPassword(password, account.PasswordHash); err != nil {
		return "", err
	} else if !ok {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := auth.IdentityClaims{
		UID:   account.UID,
		Email: account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenCfg.ExpiresIn)),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    p.tokenCfg.Issuer,
			Audience:  jwt.ClaimStrings{p.tokenCfg.Issuer},
		},
	}

	return p.jwtAuth.GenerateToken(claims, p.tokenCfg.Secret)
}
