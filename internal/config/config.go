package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Cycle     CycleConfig     `yaml:"cycle"`
	Predictor PredictorConfig `yaml:"predictor"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Redis     RedisConfig     `yaml:"redis"`
	Sweeper   SweeperConfig   `yaml:"sweeper"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token, hashing and session gate settings.
type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer          string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"cycletrack"`
	SessionTTL         time.Duration `yaml:"session_ttl"         env:"AUTH_SESSION_TTL"         env-default:"60m"`
	UserIDSalt         string        `yaml:"user_id_salt"        env:"AUTH_USER_ID_SALT"        env-required:"true"`
	PasswordSalt       string        `yaml:"password_salt"       env:"AUTH_PASSWORD_SALT"       env-required:"true"`
	PasswordMinLength  int           `yaml:"password_min_length" env:"AUTH_PASSWORD_MIN_LENGTH" env-default:"8"`
	PublicPathsRaw     string        `yaml:"public_paths"        env:"AUTH_PUBLIC_PATHS"        env-default:"/api/v1/auth/,/live,/ready,/health"`
	PersistentSessions bool          `yaml:"persistent_sessions" env:"AUTH_PERSISTENT_SESSIONS" env-default:"true"`
}

// PublicPaths returns the path prefixes that bypass the session gate.
func (c AuthConfig) PublicPaths() []string {
	var paths []string
	for _, p := range strings.Split(c.PublicPathsRaw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// CycleConfig holds state machine and statistics parameters.
type CycleConfig struct {
	StaleAfter      time.Duration `yaml:"stale_after"       env:"CYCLE_STALE_AFTER"       env-default:"168h"`
	MaxFutureSkew   time.Duration `yaml:"max_future_skew"   env:"CYCLE_MAX_FUTURE_SKEW"   env-default:"24h"`
	DefaultPageSize int           `yaml:"default_page_size" env:"CYCLE_DEFAULT_PAGE_SIZE" env-default:"20"`
	MinPageSize     int           `yaml:"min_page_size"     env:"CYCLE_MIN_PAGE_SIZE"     env-default:"10"`
	MaxPageSize     int           `yaml:"max_page_size"     env:"CYCLE_MAX_PAGE_SIZE"     env-default:"100"`
}

// PredictorConfig selects and bounds the next-period predictor.
type PredictorConfig struct {
	Kind              string        `yaml:"kind"                env:"PREDICTOR_KIND"                env-default:"statistical"`
	URL               string        `yaml:"url"                 env:"PREDICTOR_URL"`
	Timeout           time.Duration `yaml:"timeout"             env:"PREDICTOR_TIMEOUT"             env-default:"5s"`
	MinRecords        int           `yaml:"min_records"         env:"PREDICTOR_MIN_RECORDS"         env-default:"4"`
	MinCycleLength    int           `yaml:"min_cycle_length"    env:"PREDICTOR_MIN_CYCLE_LENGTH"    env-default:"21"`
	MaxCycleLength    int           `yaml:"max_cycle_length"    env:"PREDICTOR_MAX_CYCLE_LENGTH"    env-default:"45"`
	MinPeriodDuration int           `yaml:"min_period_duration" env:"PREDICTOR_MIN_PERIOD_DURATION" env-default:"2"`
	MaxPeriodDuration int           `yaml:"max_period_duration" env:"PREDICTOR_MAX_PERIOD_DURATION" env-default:"10"`
	WindowDays        int           `yaml:"window_days"         env:"PREDICTOR_WINDOW_DAYS"         env-default:"7"`
}

// RateLimitConfig holds per-IP and per-user request limits.
type RateLimitConfig struct {
	IPPerMinute     int           `yaml:"ip_per_minute"    env:"RATELIMIT_IP_PER_MINUTE"    env-default:"30"`
	UserLimit       int           `yaml:"user_limit"       env:"RATELIMIT_USER_LIMIT"       env-default:"120"`
	UserWindow      time.Duration `yaml:"user_window"      env:"RATELIMIT_USER_WINDOW"      env-default:"1m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATELIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// RedisConfig holds the Redis connection used by the per-user limiter.
// An empty URL disables per-user limiting.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// SweeperConfig holds the stale-period sweep schedule.
type SweeperConfig struct {
	Schedule string        `yaml:"schedule" env:"SWEEPER_SCHEDULE" env-default:"@every 24h"`
	Timeout  time.Duration `yaml:"timeout"  env:"SWEEPER_TIMEOUT"  env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
