// Package handler contains the HTTP handlers for the profile API.
package handler

import (
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/health-profile-api/internal/usecase"
)

// Handler bundles the HTTP handlers with their dependencies.
type Handler struct {
	accountUsecase usecase.AccountUsecase
	profileUsecase usecase.ProfileUsecase
	logger         *zerolog.Logger
}

// New creates a new Handler.
func New(
	logger *zerolog.Logger,
	accountUsecase usecase.AccountUsecase,
	profileUsecase usecase.ProfileUsecase,
) *Handler {
	return &Handler{
		accountUsecase: accountUsecase,
		profileUsecase: profileUsecase,
		logger:         logger,
	}
}
