package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/cycletrack-backend/internal/adapter/redis"
	"github.com/heartmarshall/cycletrack-backend/internal/config"
	"github.com/heartmarshall/cycletrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/cycletrack-backend/internal/transport/rest"
)

// Run is the API server entry point. It loads configuration, wires the
// services and serves HTTP until ctx is cancelled, then drains in-flight
// requests within server.shutdown_timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("predictor", cfg.Predictor.Kind),
	)

	clock := clockwork.NewRealClock()

	rt, err := Bootstrap(ctx, cfg, logger, clock)
	if err != nil {
		return err
	}
	defer rt.Close()

	handler, cleanup, err := NewHTTPHandler(ctx, cfg, rt, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app.Run shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app.Run serve: %w", err)
		}
		return nil
	}
}

// NewHTTPHandler builds the router and its middleware. The returned cleanup
// stops background limiter work and closes the Redis client.
func NewHTTPHandler(ctx context.Context, cfg *config.Config, rt *Runtime, logger *slog.Logger) (http.Handler, func(), error) {
	svcs := rt.Services

	ipLimiter := middleware.NewRateLimiter(rt.Clock, cfg.RateLimit.CleanupInterval)
	cleanup := ipLimiter.Stop

	health := rest.NewHealthHandler(rt.Pool, BuildVersion(), rt.Clock)

	mws := rest.Middlewares{
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
		},
		Gate:      middleware.SessionGate(svcs.Auth, cfg.Auth.PublicPaths(), logger),
		AuthLimit: ipLimiter.Limit(cfg.RateLimit.IPPerMinute),
	}

	if cfg.Redis.URL != "" {
		client, err := redis.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("app.NewHTTPHandler: %w", err)
		}
		limiter := redis.NewWindowLimiter(client, cfg.RateLimit.UserLimit, cfg.RateLimit.UserWindow)
		mws.UserLimit = middleware.UserRateLimit(limiter, rt.Clock, logger)
		health.WithOptional("redis", redis.Pinger{Client: client})
		cleanup = func() {
			ipLimiter.Stop()
			_ = client.Close()
		}
	} else {
		logger.Warn("redis url not set, per-user rate limiting disabled")
	}

	router := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(svcs.Auth, logger),
		Cycle:   rest.NewCycleHandler(svcs.Cycle, logger),
		Insight: rest.NewInsightHandler(svcs.Insight, logger),
		User:    rest.NewUserHandler(svcs.User, logger),
		Health:  health,
	}, mws)

	return router, cleanup, nil
}
