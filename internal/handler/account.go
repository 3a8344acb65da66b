package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vasapolrittideah/health-profile-api/internal/payload"
	"github.com/vasapolrittideah/health-profile-api/internal/response"
	"github.com/vasapolrittideah/health-profile-api/internal/usecase"
)

// Register creates a new identity and its profile document.
//
// POST /register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.accountUsecase.Register(r.Context(), usecase.RegisterParams{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to register user")
		// The raw error message is part of the response contract here.
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	response.Message(w, http.StatusCreated, "User registered successfully")
}

// Login verifies an ID token obtained from the identity provider out of band
// and returns the caller's profile. Failure reasons are deliberately not
// distinguished.
//
// POST /backend-login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid token or user not found")
		return
	}

	profile, err := h.accountUsecase.Login(r.Context(), req.IDToken)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to log in user")
		response.Error(w, http.StatusBadRequest, "Invalid token or user not found")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    payload.NewUser(profile),
	})
}

// Logout is a placeholder: tokens are not revoked server-side, real session
// termination happens client-side by discarding the cached token.
//
// POST /logout
func (*Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	response.Message(w, http.StatusOK, "Logout successful")
}
