package payload

import "github.com/vasapolrittideah/health-profile-api/internal/model"

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type LoginRequest struct {
	IDToken string `json:"idToken"`
}

type UpdateProfileRequest struct {
	Age    *int     `json:"age"`
	Gender *string  `json:"gender"`
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`
}

// User is the profile projection returned by login and profile fetch.
type User struct {
	UID         string   `json:"uid"`
	Email       string   `json:"email"`
	DisplayName string   `json:"displayName"`
	Age         *int     `json:"age"`
	Gender      *string  `json:"gender"`
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
}

// NewUser builds the user projection from a profile document.
func NewUser(profile *model.Profile) User {
	return User{
		UID:         profile.UID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		Age:         profile.Age,
		Gender:      profile.Gender,
		Height:      profile.Height,
		Weight:      profile.Weight,
	}
}
