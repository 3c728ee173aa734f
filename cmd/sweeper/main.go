// Command sweeper closes ongoing periods that were never ended. It runs the
// sweep on sweeper.schedule until interrupted, or exactly once with -once.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/cycletrack-backend/internal/app"
	"github.com/heartmarshall/cycletrack-backend/internal/config"
)

func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()
	rt, err := app.Bootstrap(ctx, cfg, logger, clock)
	if err != nil {
		logger.Error("bootstrap", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer rt.Close()

	sweeper, err := app.NewSweeper(rt.Services.Cycle, clock, cfg.Sweeper, logger)
	if err != nil {
		logger.Error("create sweeper", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *once {
		if _, err := sweeper.RunOnce(ctx); err != nil {
			logger.Error("sweep failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	logger.Info("sweeper started", slog.String("schedule", cfg.Sweeper.Schedule))
	sweeper.Start()
	<-ctx.Done()

	logger.Info("sweeper stopping")
	<-sweeper.Stop().Done()
}
