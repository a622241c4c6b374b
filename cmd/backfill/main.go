package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fightpicks/fightpicks/internal/config"
	"github.com/fightpicks/fightpicks/internal/database"
	"github.com/fightpicks/fightpicks/internal/database/postgres"
	"github.com/fightpicks/fightpicks/internal/event"
	"github.com/fightpicks/fightpicks/internal/leaderboard"
	"github.com/fightpicks/fightpicks/internal/logger"
)

// Recomputes the winner set for every completed event. Run after fixing bad
// fight results or importing historical data.
func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level := cfg.LogLevel
	if *verbose {
		level = logger.LogLevelDebug
	}
	logger.InitLogger(logger.NewConfig(level, cfg.LogFormat, "fightpicks-backfill", cfg.Version, cfg.Environment, false))

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	eventRepo := postgres.NewEventRepository(pool)
	resultRepo := postgres.NewResultRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	winnerRepo := postgres.NewEventWinnerRepository(pool)

	leaderboardService := leaderboard.NewService(resultRepo, userRepo, winnerRepo)
	eventService := event.NewService(eventRepo, winnerRepo, leaderboardService)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	report, err := eventService.BackfillWinners(ctx)
	if err != nil {
		log.Fatalf("Backfill failed: %v", err)
	}

	fmt.Printf("Processed %d events, wrote %d winner rows\n", report.Processed, report.Winners)
	for _, s := range report.Skipped {
		fmt.Printf("Skipped event %d: %s\n", s.EventID, s.Reason)
	}
	if len(report.Skipped) > 0 {
		os.Exit(1)
	}
}
