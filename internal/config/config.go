package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port            string
	LogLevel        logrus.Level
	QueryCacheTTL   time.Duration
	VoteRateLimit   float64
	VoteRateBurst   int
	ShutdownTimeout time.Duration
}

// Load reads the service configuration from the environment. Variables in a
// .env file in the working directory are applied first without overriding
// ones already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", levelStr, err)
	}

	cacheTTL, err := duration("QUERY_CACHE_TTL", time.Second)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := duration("SHUTDOWN_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	voteRate := 5.0
	if v := os.Getenv("VOTE_RATE_LIMIT"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid VOTE_RATE_LIMIT %q: must be a positive number", v)
		}
		voteRate = parsed
	}

	voteBurst := 10
	if v := os.Getenv("VOTE_RATE_BURST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid VOTE_RATE_BURST %q: must be a positive integer", v)
		}
		voteBurst = parsed
	}

	return &Config{
		Port:            port,
		LogLevel:        level,
		QueryCacheTTL:   cacheTTL,
		VoteRateLimit:   voteRate,
		VoteRateBurst:   voteBurst,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, v)
	}
	return d, nil
}
