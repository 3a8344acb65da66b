package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/health-profile-api/internal/model"
	"github.com/vasapolrittideah/health-profile-api/internal/repository"
)

// ProfileUsecase defines the profile read and update use cases.
type ProfileUsecase interface {
	Fetch(ctx context.Context, uid string) (*model.Profile, error)
	Update(ctx context.Context, callerUID, targetUID string, params repository.UpdateHealthParams) error
}

var ErrNotProfileOwner = errors.New("you are not authorized to update this profile")

type profileUsecase struct {
	profileRepo repository.ProfileRepository
}

// NewProfileUsecase creates a new ProfileUsecase.
func NewProfileUsecase(profileRepo repository.ProfileRepository) ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

func (u *profileUsecase) Fetch(ctx context.Context, uid string) (*model.Profile, error) {
	profile, err := u.profileRepo.GetProfileByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return profile, nil
}

// Update overwrites the health fields of the target profile. A caller may
// only update their own profile; the ownership check runs before any write.
func (u *profileUsecase) Update(
	ctx context.Context,
	callerUID, targetUID string,
	params repository.UpdateHealthParams,
) error {
	if callerUID != targetUID {
		return ErrNotProfileOwner
	}

	if _, err := u.profileRepo.UpdateHealth(ctx, targetUID, params); err != nil {
		return err
	}

	return nil
}
