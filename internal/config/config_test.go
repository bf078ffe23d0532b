package config_test

import (
	"io"
	"os"
	"testing"
	"time"

	"erp-monolith/internal/config"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	old := pflag.CommandLine
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	t.Cleanup(func() {
		pflag.CommandLine = old
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_RATE", "RATE_LIMIT_BURST",
		"RATE_LIMIT_TTL", "RATE_LIMIT_MAX_BUCKETS",
		"PPROF_ENABLED", "PPROF_PORT", "PPROF_USER", "PPROF_PASS",
		"STATS_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 8080, cfg.Port)
	require.False(t, cfg.RateLimit.Enabled)
	require.Equal(t, float64(100), cfg.RateLimit.Rate)
	require.Equal(t, 200, cfg.RateLimit.Burst)
	require.Equal(t, 10*time.Minute, cfg.RateLimit.TTL)
	require.Equal(t, 10000, cfg.RateLimit.MaxBuckets)
	require.False(t, cfg.Pprof.Enabled)
	require.Equal(t, 6060, cfg.Pprof.Port)
	require.Equal(t, 30*time.Second, cfg.Stats.Interval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RATE", "5.5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("RATE_LIMIT_TTL", "2m")
	t.Setenv("RATE_LIMIT_MAX_BUCKETS", "500")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_PORT", "7070")
	t.Setenv("PPROF_USER", "admin")
	t.Setenv("PPROF_PASS", "secret")
	t.Setenv("STATS_INTERVAL", "15s")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 9090, cfg.Port)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 5.5, cfg.RateLimit.Rate)
	require.Equal(t, 10, cfg.RateLimit.Burst)
	require.Equal(t, 2*time.Minute, cfg.RateLimit.TTL)
	require.Equal(t, 500, cfg.RateLimit.MaxBuckets)
	require.True(t, cfg.Pprof.Enabled)
	require.Equal(t, 7070, cfg.Pprof.Port)
	require.Equal(t, "admin", cfg.Pprof.User)
	require.Equal(t, "secret", cfg.Pprof.Pass)
	require.Equal(t, 15*time.Second, cfg.Stats.Interval)
}

func TestLoad_InvalidPort(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "70000")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidPortValue(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "not-a-number")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidStatsInterval(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("STATS_INTERVAL", "bad-interval")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_InvalidRateLimitRate(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RATE", "-1")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_FlagsParseError(t *testing.T) {
	oldArgs := os.Args
	oldCommandLine := pflag.CommandLine

	defer func() {
		os.Args = oldArgs
		pflag.CommandLine = oldCommandLine
	}()

	clearEnv(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pflag.CommandLine = fs
	os.Args = []string{"cmd", "--port=not-a-number"}

	cfg, err := config.Load()

	require.Error(t, err)
	require.Nil(t, cfg)
	require.Contains(t, err.Error(), "parse flags")
}
