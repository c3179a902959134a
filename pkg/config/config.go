package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all application configuration values
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Sessions
	SessionCookie        string        `env:"SESSION_COOKIE" envDefault:"student_form_session"`
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`

	// Per-session record cap, 0 means unlimited
	MaxRecords int `env:"MAX_RECORDS" envDefault:"1000"`
	// Live session cap, 0 means unlimited. The least recently used
	// session is evicted when a new one would exceed it.
	MaxSessions int `env:"MAX_SESSIONS" envDefault:"10000"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.MaxRecords < 0 {
		return nil, fmt.Errorf("MAX_RECORDS must not be negative, got %d", cfg.MaxRecords)
	}
	if cfg.MaxSessions < 0 {
		return nil, fmt.Errorf("MAX_SESSIONS must not be negative, got %d", cfg.MaxSessions)
	}
	if cfg.SessionTTL < 0 {
		return nil, fmt.Errorf("SESSION_TTL must not be negative, got %s", cfg.SessionTTL)
	}
	if cfg.SessionSweepInterval <= 0 {
		return nil, fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive, got %s", cfg.SessionSweepInterval)
	}
	return cfg, nil
}
