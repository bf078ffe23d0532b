package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// RateLimit stores HTTP rate limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle bucket eviction
	MaxBuckets int
}

// Pprof stores debug pprof server settings.
type Pprof struct {
	Enabled bool
	Port    int
	User    string
	Pass    string
}

// Stats stores store statistics worker settings.
type Stats struct {
	Interval time.Duration
}

// Config stores service settings.
type Config struct {
	Port      int
	RateLimit RateLimit
	Pprof     Pprof
	Stats     Stats
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		RateLimit: DefaultRateLimit(),
		Pprof:     DefaultPprof(),
		Stats:     DefaultStats(),
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return err
	}

	cfg.RateLimit.Enabled = envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	if cfg.RateLimit.Rate, err = envFloat("RATE_LIMIT_RATE", cfg.RateLimit.Rate); err != nil {
		return err
	}
	if cfg.RateLimit.Burst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return err
	}
	if cfg.RateLimit.TTL, err = envDuration("RATE_LIMIT_TTL", cfg.RateLimit.TTL); err != nil {
		return err
	}
	if cfg.RateLimit.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets); err != nil {
		return err
	}

	cfg.Pprof.Enabled = envBool("PPROF_ENABLED", cfg.Pprof.Enabled)
	if cfg.Pprof.Port, err = envInt("PPROF_PORT", cfg.Pprof.Port); err != nil {
		return err
	}
	cfg.Pprof.User = envString("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envString("PPROF_PASS", cfg.Pprof.Pass)

	if cfg.Stats.Interval, err = envDuration("STATS_INTERVAL", cfg.Stats.Interval); err != nil {
		return err
	}
	return nil
}

func applyFlags(cfg *Config) error {
	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.BoolVar(&cfg.RateLimit.Enabled, "rate-limit", cfg.RateLimit.Enabled, "enable per-client rate limiting")
	pflag.BoolVar(&cfg.Pprof.Enabled, "pprof", cfg.Pprof.Enabled, "enable debug pprof server")

	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Pprof.Enabled && (cfg.Pprof.Port <= 0 || cfg.Pprof.Port > 65535) {
		return fmt.Errorf("invalid pprof port: %d", cfg.Pprof.Port)
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.Rate <= 0 {
		return fmt.Errorf("invalid rate limit rate: %v", cfg.RateLimit.Rate)
	}
	if cfg.Stats.Interval <= 0 {
		return fmt.Errorf("invalid stats interval: %v", cfg.Stats.Interval)
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return f, nil
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}
