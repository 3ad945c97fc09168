package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "QUERY_CACHE_TTL", "VOTE_RATE_LIMIT", "VOTE_RATE_BURST", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.QueryCacheTTL)
	assert.Equal(t, 5.0, cfg.VoteRateLimit)
	assert.Equal(t, 10, cfg.VoteRateBurst)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("QUERY_CACHE_TTL", "250ms")
	t.Setenv("VOTE_RATE_LIMIT", "0.5")
	t.Setenv("VOTE_RATE_BURST", "3")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.QueryCacheTTL)
	assert.Equal(t, 0.5, cfg.VoteRateLimit)
	assert.Equal(t, 3, cfg.VoteRateBurst)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_ZeroCacheTTLAllowed(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUERY_CACHE_TTL", "0s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.QueryCacheTTL)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"LOG_LEVEL":        "loud",
		"QUERY_CACHE_TTL":  "soon",
		"SHUTDOWN_TIMEOUT": "-1s",
		"VOTE_RATE_LIMIT":  "0",
		"VOTE_RATE_BURST":  "many",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
