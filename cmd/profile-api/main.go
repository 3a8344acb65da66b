package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/health-profile-api/internal/auth"
	"github.com/vasapolrittideah/health-profile-api/internal/config"
	"github.com/vasapolrittideah/health-profile-api/internal/handler"
	"github.com/vasapolrittideah/health-profile-api/internal/identity"
	"github.com/vasapolrittideah/health-profile-api/internal/mailer"
	"github.com/vasapolrittideah/health-profile-api/internal/registry"
	"github.com/vasapolrittideah/health-profile-api/internal/repository"
	"github.com/vasapolrittideah/health-profile-api/internal/server"
	"github.com/vasapolrittideah/health-profile-api/internal/usecase"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "health-profile-api").Logger()

	cfg := config.New(&logger)

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	db := client.Database(cfg.MongoDatabase)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	accountRepo := repository.NewAccountMongoRepository(initCtx, &logger, db)
	profileRepo := repository.NewProfileMongoRepository(initCtx, &logger, db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Issuer, cfg.Token.Issuer)
	provider := identity.NewHostedProvider(&logger, accountRepo, jwtAuth, cfg.Token)

	var googleVerifier *identity.GoogleVerifier
	if cfg.GoogleClientID != "" {
		googleVerifier = identity.NewGoogleVerifier(cfg.GoogleClientID)
	}

	var welcomeMailer *mailer.Mailer
	if cfg.SMTPEnabled {
		welcomeMailer = mailer.NewMailer(&logger)
	}

	accountUsecase := usecase.NewAccountUsecase(&logger, provider, googleVerifier, profileRepo, welcomeMailer)
	profileUsecase := usecase.NewProfileUsecase(profileRepo)

	h := handler.New(&logger, accountUsecase, profileUsecase)
	router := server.NewRouter(&logger, h, provider)
	srv := server.New(cfg, router)

	var deregister func() error
	if cfg.ConsulAddr != "" {
		deregister, err = registry.Register(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to register service with consul")
		}
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting http server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info().Msg("shutting down")

	if deregister != nil {
		if err := deregister(); err != nil {
			logger.Error().Err(err).Msg("failed to deregister service from consul")
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down http server gracefully")
	}
}
