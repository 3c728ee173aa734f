package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if len(c.Auth.UserIDSalt) < 16 {
		return fmt.Errorf("auth.user_id_salt must be at least 16 characters (got %d)", len(c.Auth.UserIDSalt))
	}
	if len(c.Auth.PasswordSalt) < 16 {
		return fmt.Errorf("auth.password_salt must be at least 16 characters (got %d)", len(c.Auth.PasswordSalt))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}

	if err := c.Cycle.validate(); err != nil {
		return fmt.Errorf("cycle: %w", err)
	}
	if err := c.Predictor.validate(); err != nil {
		return fmt.Errorf("predictor: %w", err)
	}
	if err := c.Sweeper.validate(); err != nil {
		return fmt.Errorf("sweeper: %w", err)
	}

	if c.RateLimit.IPPerMinute <= 0 {
		return fmt.Errorf("ratelimit.ip_per_minute must be > 0 (got %d)", c.RateLimit.IPPerMinute)
	}

	return nil
}

func (c *CycleConfig) validate() error {
	if c.StaleAfter <= 0 {
		return fmt.Errorf("stale_after must be > 0 (got %v)", c.StaleAfter)
	}
	if c.MinPageSize <= 0 || c.MaxPageSize < c.MinPageSize {
		return fmt.Errorf("page size bounds invalid (min %d, max %d)", c.MinPageSize, c.MaxPageSize)
	}
	if c.DefaultPageSize < c.MinPageSize || c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default_page_size must be within [%d, %d] (got %d)", c.MinPageSize, c.MaxPageSize, c.DefaultPageSize)
	}
	return nil
}

func (p *PredictorConfig) validate() error {
	switch strings.ToLower(p.Kind) {
	case "statistical":
	case "http":
		if p.URL == "" {
			return fmt.Errorf("url is required for kind http")
		}
	default:
		return fmt.Errorf("unknown kind %q", p.Kind)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", p.Timeout)
	}
	if p.MinRecords < 2 {
		return fmt.Errorf("min_records must be >= 2 (got %d)", p.MinRecords)
	}
	if p.MinCycleLength <= 0 || p.MaxCycleLength < p.MinCycleLength {
		return fmt.Errorf("cycle length bounds invalid (min %d, max %d)", p.MinCycleLength, p.MaxCycleLength)
	}
	if p.MinPeriodDuration <= 0 || p.MaxPeriodDuration < p.MinPeriodDuration {
		return fmt.Errorf("period duration bounds invalid (min %d, max %d)", p.MinPeriodDuration, p.MaxPeriodDuration)
	}
	return nil
}

func (s *SweeperConfig) validate() error {
	if _, err := cron.ParseStandard(strings.TrimSpace(s.Schedule)); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", s.Schedule, err)
	}
	return nil
}
