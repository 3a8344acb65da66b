package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/health-profile-api/internal/identity"
	"github.com/vasapolrittideah/health-profile-api/internal/mailer"
	"github.com/vasapolrittideah/health-profile-api/internal/model"
	"github.com/vasapolrittideah/health-profile-api/internal/repository"
)

// AccountUsecase defines the account-related use cases: registration and
// token-based login.
type AccountUsecase interface {
	Register(ctx context.Context, params RegisterParams) error
	Login(ctx context.Context, idToken string) (*model.Profile, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Email       string
	Password    string
	DisplayName string
}

var ErrUserNotFound = errors.New("user not found")

type accountUsecase struct {
	provider       identity.Provider
	googleVerifier *identity.GoogleVerifier
	profileRepo    repository.ProfileRepository
	mailer         *mailer.Mailer
	logger         *zerolog.Logger
}

// NewAccountUsecase creates a new AccountUsecase. The Google verifier and the
// mailer are both optional and may be nil.
func NewAccountUsecase(
	logger *zerolog.Logger,
	provider identity.Provider,
	googleVerifier *identity.GoogleVerifier,
	profileRepo repository.ProfileRepository,
	mailer *mailer.Mailer,
) AccountUsecase {
	return &accountUsecase{
		provider:       provider,
		googleVerifier: googleVerifier,
		profileRepo:    profileRepo,
		mailer:         mailer,
		logger:         logger,
	}
}

// Register creates a new identity with the provider and then writes the
// profile document keyed by the assigned UID. The two writes are not
// transactional; a failed profile write leaves an identity without a profile.
func (u *accountUsecase) Register(ctx context.Context, params RegisterParams) error {
	account, err := u.provider.CreateUser(ctx, identity.CreateUserParams{
		Email:       params.Email,
		Password:    params.Password,
		DisplayName: params.DisplayName,
	})
	if err != nil {
		return err
	}

	if _, err := u.profileRepo.CreateProfile(ctx, &model.Profile{
		UID:         account.UID,
		Email:       account.Email,
		DisplayName: account.DisplayName,
	}); err != nil {
		return err
	}

	if u.mailer != nil {
		go u.sendWelcomeEmail(account)
	}

	return nil
}

// Login verifies the supplied ID token and returns the profile of the
// identity it belongs to. Tokens that fail hosted verification are retried
// against Google when a verifier is configured.
func (u *accountUsecase) Login(ctx context.Context, idToken string) (*model.Profile, error) {
	ident, err := u.provider.VerifyToken(ctx, idToken)
	if err != nil && u.googleVerifier != nil {
		ident, err = u.googleVerifier.VerifyIDToken(ctx, idToken)
	}
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetProfileByUID(ctx, ident.UID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return profile, nil
}

func (u *accountUsecase) sendWelcomeEmail(account *model.Account) {
	htmlBody := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your account has been created. You can now sign in and fill out your health profile.</p>

		<p>Thank you,</p>
		<p>Health Profile Team</p>
	`, account.DisplayName)

	if err := u.mailer.SendHTML([]string{account.Email}, "Welcome", htmlBody); err != nil {
		u.logger.Error().Err(err).Str("uid", account.UID).Msg("failed to send welcome email")
	}
}
