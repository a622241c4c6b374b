package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fightpicks/fightpicks/internal/config"
	"github.com/fightpicks/fightpicks/internal/database"
	"github.com/fightpicks/fightpicks/internal/database/postgres"
	"github.com/fightpicks/fightpicks/internal/event"
	"github.com/fightpicks/fightpicks/internal/fight"
	"github.com/fightpicks/fightpicks/internal/handler"
	"github.com/fightpicks/fightpicks/internal/leaderboard"
	"github.com/fightpicks/fightpicks/internal/prediction"
	"github.com/fightpicks/fightpicks/internal/scoring"
	"github.com/fightpicks/fightpicks/internal/server"
	"github.com/fightpicks/fightpicks/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	if cfg.MigrateOnStart {
		if err := database.Migrate(cfg.GetDBConnString(), cfg.MigrationsDir); err != nil {
			slog.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories
	eventRepo := postgres.NewEventRepository(pool)
	fightRepo := postgres.NewFightRepository(pool)
	predictionRepo := postgres.NewPredictionRepository(pool)
	resultRepo := postgres.NewResultRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	winnerRepo := postgres.NewEventWinnerRepository(pool)

	// Services
	fightService := fight.NewService(fightRepo, eventRepo)
	leaderboardService := leaderboard.NewService(resultRepo, userRepo, winnerRepo)
	services := server.Services{
		Events:       event.NewService(eventRepo, winnerRepo, leaderboardService),
		Fights:       fightService,
		Predictions:  prediction.NewService(predictionRepo, fightService, userRepo),
		Scoring:      scoring.NewService(fightRepo, predictionRepo, resultRepo),
		Leaderboards: leaderboardService,
		Users:        user.NewService(userRepo),
	}

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, cfg.AdminAPIKey, cfg.CORSAllowedOrigins, cfg.TrustedProxies, pool, services)

	// Serve until interrupted, then drain in-flight requests.
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
