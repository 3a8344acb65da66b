package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/health-profile-api/internal/model"
	"github.com/vasapolrittideah/health-profile-api/internal/repository"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestProfileUsecase_Fetch(t *testing.T) {
	repo := newFakeProfileRepository()
	repo.profiles["uid-1"] = &model.Profile{UID: "uid-1", Email: "a@x.com", DisplayName: "A"}
	uc := NewProfileUsecase(repo)

	profile, err := uc.Fetch(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", profile.Email)
}

func TestProfileUsecase_Fetch_NotFound(t *testing.T) {
	uc := NewProfileUsecase(newFakeProfileRepository())

	_, err := uc.Fetch(context.Background(), "uid-missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileUsecase_Update_Owner(t *testing.T) {
	repo := newFakeProfileRepository()
	repo.profiles["uid-1"] = &model.Profile{UID: "uid-1", Email: "a@x.com", DisplayName: "A"}
	uc := NewProfileUsecase(repo)

	err := uc.Update(context.Background(), "uid-1", "uid-1", repository.UpdateHealthParams{
		Age:    intPtr(30),
		Gender: strPtr("female"),
		Height: floatPtr(170.5),
		Weight: floatPtr(62.0),
	})
	require.NoError(t, err)

	profile := repo.profiles["uid-1"]
	assert.Equal(t, 30, *profile.Age)
	assert.Equal(t, "female", *profile.Gender)
	assert.Equal(t, 170.5, *profile.Height)
	assert.Equal(t, 62.0, *profile.Weight)
}

func TestProfileUsecase_Update_OverwritesAbsentFields(t *testing.T) {
	repo := newFakeProfileRepository()
	repo.profiles["uid-1"] = &model.Profile{
		UID:    "uid-1",
		Age:    intPtr(30),
		Gender: strPtr("female"),
	}
	uc := NewProfileUsecase(repo)

	// Fields absent from the request are written as null; there is no
	// partial-merge behavior.
	err := uc.Update(context.Background(), "uid-1", "uid-1", repository.UpdateHealthParams{
		Height: floatPtr(170.5),
	})
	require.NoError(t, err)

	profile := repo.profiles["uid-1"]
	assert.Nil(t, profile.Age)
	assert.Nil(t, profile.Gender)
	assert.Equal(t, 170.5, *profile.Height)
	assert.Nil(t, profile.Weight)
}

func TestProfileUsecase_Update_NotOwner(t *testing.T) {
	repo := newFakeProfileRepository()
	repo.profiles["uid-b"] = &model.Profile{UID: "uid-b", Age: intPtr(40)}
	uc := NewProfileUsecase(repo)

	err := uc.Update(context.Background(), "uid-a", "uid-b", repository.UpdateHealthParams{
		Age: intPtr(1),
	})
	assert.ErrorIs(t, err, ErrNotProfileOwner)

	// The target record must never be mutated.
	assert.Equal(t, 40, *repo.profiles["uid-b"].Age)
}

func TestProfileUsecase_Update_MissingProfile(t *testing.T) {
	uc := NewProfileUsecase(newFakeProfileRepository())

	err := uc.Update(context.Background(), "uid-1", "uid-1", repository.UpdateHealthParams{})
	assert.Error(t, err)
}
