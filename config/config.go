// Package config loads and validates the application configuration from
// environment variables. Loading fails hard on missing mandatory values —
// in particular JWT_SECRET and DATABASE_URL have no defaults — and all
// validation problems are collected and reported together rather than one
// at a time.
package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Environment names accepted in NODE_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds every environment value the service consumes.
type Config struct {
	Env           string `env:"NODE_ENV,required"`
	Port          string `env:"PORT" envDefault:"8080"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	JWTSecret     string `env:"JWT_SECRET,required"`
	JWTExpiresIn  string `env:"JWT_EXPIRES_IN"`
	CORSOrigin    string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	EnableLogging bool   `env:"ENABLE_LOGGING" envDefault:"true"`

	tokenTTL time.Duration
}

// Load parses the environment into a Config and validates it. It returns a
// single aggregated error listing every problem found.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	var problems []string

	switch cfg.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		problems = append(problems, fmt.Sprintf("NODE_ENV must be one of development, production, test; got %q", cfg.Env))
	}

	switch cfg.LogLevel {
	case "error", "warn", "info", "debug":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of error, warn, info, debug; got %q", cfg.LogLevel))
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		problems = append(problems, fmt.Sprintf("PORT must be numeric; got %q", cfg.Port))
	}

	if cfg.JWTExpiresIn != "" {
		ttl, err := parseExpiry(cfg.JWTExpiresIn)
		if err != nil {
			problems = append(problems, fmt.Sprintf("JWT_EXPIRES_IN is not a valid duration: %v", err))
		} else {
			cfg.tokenTTL = ttl
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(problems, "\n- "))
	}

	return &cfg, nil
}

// TokenTTL returns the configured token lifetime. Zero means tokens are
// issued without an expiration claim.
func (c *Config) TokenTTL() time.Duration {
	return c.tokenTTL
}

// IsProduction reports whether the service runs with NODE_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// IsDevelopment reports whether the service runs with NODE_ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

var daysRe = regexp.MustCompile(`^(\d+)d$`)

// parseExpiry accepts Go duration syntax ("15m", "168h") plus a day suffix
// ("7d") so existing deployments keep their JWT_EXPIRES_IN values.
func parseExpiry(s string) (time.Duration, error) {
	if m := daysRe.FindStringSubmatch(s); m != nil {
		days, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, err
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}
