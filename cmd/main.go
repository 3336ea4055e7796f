package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/copaamateur/copa-backend/config"
	"github.com/copaamateur/copa-backend/db"
	_ "github.com/copaamateur/copa-backend/docs"
	"github.com/copaamateur/copa-backend/handlers"
	"github.com/copaamateur/copa-backend/middleware"
	"github.com/copaamateur/copa-backend/repositories"
	api "github.com/copaamateur/copa-backend/routes"
	"github.com/copaamateur/copa-backend/services"
	"github.com/copaamateur/copa-backend/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("file uploader initialized")

	// Репозитории
	transactor := repositories.NewSQLTransactor(dbConn)
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	eventRepo := repositories.NewPostgresEventRepository(dbConn)
	eventTeamRepo := repositories.NewPostgresEventTeamRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	postRepo := repositories.NewPostgresPostRepository(dbConn)
	sponsorRepo := repositories.NewPostgresSponsorRepository(dbConn)
	participantRepo := repositories.NewPostgresParticipantRepository(dbConn)

	// Сервисы
	authService := services.NewAuthService(userRepo, cfg.JWTSecretKey)
	teamService := services.NewTeamService(teamRepo, uploader)
	eventService := services.NewEventService(eventRepo, eventTeamRepo, matchRepo, uploader)
	tournamentService := services.NewTournamentService(
		transactor,
		eventRepo,
		eventTeamRepo,
		matchRepo,
		userRepo,
		logger,
	)
	postService := services.NewPostService(postRepo, uploader)
	sponsorService := services.NewSponsorService(sponsorRepo, uploader)
	participantService := services.NewParticipantService(participantRepo)
	logger.Info("services initialized")

	// HTTP-обработчики
	authMiddleware := middleware.NewAuth(cfg.JWTSecretKey)
	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService, participantService)
	eventHandler := handlers.NewEventHandler(eventService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService, authService)
	postHandler := handlers.NewPostHandler(postService)
	sponsorHandler := handlers.NewSponsorHandler(sponsorService)
	participantHandler := handlers.NewParticipantHandler(participantService)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		authMiddleware,
		authHandler,
		teamHandler,
		eventHandler,
		tournamentHandler,
		postHandler,
		sponsorHandler,
		participantHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
