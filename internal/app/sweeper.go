package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/cycletrack-backend/internal/config"
	cyclesvc "github.com/heartmarshall/cycletrack-backend/internal/service/cycle"
)

type staleSweeper interface {
	SweepStale(ctx context.Context, now time.Time) (cyclesvc.SweepResult, error)
}

// Sweeper closes stale ongoing periods on a cron schedule. Runs never overlap.
type Sweeper struct {
	svc     staleSweeper
	clock   clockwork.Clock
	timeout time.Duration
	cron    *cron.Cron
	log     *slog.Logger
}

// NewSweeper parses cfg.Schedule (standard five-field or @every/@daily
// descriptors, evaluated in UTC).
func NewSweeper(svc staleSweeper, clock clockwork.Clock, cfg config.SweeperConfig, logger *slog.Logger) (*Sweeper, error) {
	s := &Sweeper{
		svc:     svc,
		clock:   clock,
		timeout: cfg.Timeout,
		log:     logger.With("component", "sweeper"),
	}

	s.cron = cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := s.cron.AddFunc(strings.TrimSpace(cfg.Schedule), s.tick); err != nil {
		return nil, fmt.Errorf("app.NewSweeper: schedule %q: %w", cfg.Schedule, err)
	}
	return s, nil
}

// RunOnce performs a single sweep bounded by the configured timeout.
func (s *Sweeper) RunOnce(ctx context.Context) (cyclesvc.SweepResult, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	now := s.clock.Now().UTC()
	res, err := s.svc.SweepStale(ctx, now)
	if err != nil {
		return res, fmt.Errorf("app.Sweeper.RunOnce: %w", err)
	}

	s.log.InfoContext(ctx, "sweep finished",
		slog.Time("now", now),
		slog.Int("closed", res.Closed),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

func (s *Sweeper) tick() {
	if _, err := s.RunOnce(context.Background()); err != nil {
		s.log.Error("sweep failed", slog.String("error", err.Error()))
	}
}

// Start begins scheduling in the background.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts scheduling and returns a context that is done once a running
// sweep has finished.
func (s *Sweeper) Stop() context.Context {
	return s.cron.Stop()
}
