// Package server assembles the HTTP router and server for the profile API.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/health-profile-api/internal/config"
	"github.com/vasapolrittideah/health-profile-api/internal/handler"
	"github.com/vasapolrittideah/health-profile-api/internal/identity"
	"github.com/vasapolrittideah/health-profile-api/internal/middleware"
)

// NewRouter builds the chi router with the full HTTP surface. All endpoints
// hang off a single entry point; /profile and /user/{uid} sit behind the
// bearer-token middleware.
func NewRouter(logger *zerolog.Logger, h *handler.Handler, provider identity.Provider) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(accessLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Post("/register", h.Register)
	r.Post("/backend-login", h.Login)
	r.Post("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(provider))
		r.Get("/profile", h.FetchProfile)
		r.Put("/user/{uid}", h.UpdateProfile)
	})

	return r
}

// New creates the http.Server for the given router.
func New(cfg *config.Config, router chi.Router) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func accessLogger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", chimiddleware.GetReqID(r.Context())).
				Msg("request completed")
		})
	}
}
