package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vasapolrittideah/health-profile-api/internal/middleware"
	"github.com/vasapolrittideah/health-profile-api/internal/payload"
	"github.com/vasapolrittideah/health-profile-api/internal/repository"
	"github.com/vasapolrittideah/health-profile-api/internal/response"
	"github.com/vasapolrittideah/health-profile-api/internal/usecase"
)

// FetchProfile returns the authenticated caller's profile.
//
// GET /profile
func (h *Handler) FetchProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.profileUsecase.Fetch(r.Context(), ident.UID)
	if err != nil {
		h.logger.Error().Err(err).Str("uid", ident.UID).Msg("failed to fetch profile")
		response.Error(w, http.StatusBadRequest, "User not found")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"message": "Profile fetched successfully",
		"user":    payload.NewUser(profile),
	})
}

// UpdateProfile overwrites the health fields of the profile named by the path
// parameter. Callers may only update their own profile.
//
// PUT /user/{uid}
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	uid := chi.URLParam(r, "uid")

	var req payload.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.profileUsecase.Update(r.Context(), ident.UID, uid, repository.UpdateHealthParams{
		Age:    req.Age,
		Gender: req.Gender,
		Height: req.Height,
		Weight: req.Weight,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNotProfileOwner) {
			response.Error(w, http.StatusForbidden, "You are not authorized to update this profile")
			return
		}

		h.logger.Error().Err(err).Str("uid", uid).Msg("failed to update profile")
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	response.Message(w, http.StatusOK, "User updated successfully")
}
