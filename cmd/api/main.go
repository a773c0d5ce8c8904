package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/awash-lottery/backend/api/routes"
	"github.com/awash-lottery/backend/internal/config"
	"github.com/awash-lottery/backend/internal/handlers"
	mongorepo "github.com/awash-lottery/backend/internal/repositories/mongodb"
	"github.com/awash-lottery/backend/internal/services"
	"github.com/awash-lottery/backend/pkg/emailgateway"
	"github.com/awash-lottery/backend/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		slog.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// The unique (cycle, place) index backs the announcement upsert, so it
	// has to exist before the server starts accepting requests.
	if err := mongorepo.EnsureIndexes(context.Background(), db); err != nil {
		slog.Error("failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	// Repositories
	settingsRepo := mongorepo.NewSettingsRepository(db)
	ticketRepo := mongorepo.NewTicketRepository(db)
	winnerRepo := mongorepo.NewWinnerRepository(db)
	notificationRepo := mongorepo.NewNotificationRepository(db)
	userRepo := mongorepo.NewUserRepository(db)
	adminUserRepo := mongorepo.NewAdminUserRepository(db)
	txnRunner := mongorepo.NewSessionRunner(mongoClient.Raw())

	// Services
	emailGateway := emailgateway.NewGateway(cfg)
	notificationService := services.NewNotificationService(notificationRepo, emailGateway)
	winnerService := services.NewWinnerService(settingsRepo, ticketRepo, winnerRepo, userRepo, txnRunner, notificationService)
	authService := services.NewAuthService(adminUserRepo, cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	winnerHandler := handlers.NewWinnerHandler(winnerService)

	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		AuthHandler:   authHandler,
		WinnerHandler: winnerHandler,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exiting")
}
