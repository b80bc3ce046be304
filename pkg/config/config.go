// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"katalog/pkg/logger"
)

// Config holds the runtime settings of the API process.
type Config struct {
	ServiceName string
	HTTPAddr    string
	LogLevel    logger.Level

	OTELHost        string
	OTELStdout      bool
	OTELProbability float64

	CORSAllowedOrigins []string

	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	ShutdownGrace time.Duration
}

// Load reads the optional env files (".env" when none are given) and then
// the process environment. Variables already set win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using lookup for every variable.
func FromEnv(lookup func(string) string) (Config, error) {
	getenv := func(key, def string) string {
		if v := lookup(key); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		ServiceName: getenv("SERVICE_NAME", "katalog"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		OTELHost:    getenv("OTEL_HOST", ""),
	}

	var err error
	if cfg.LogLevel, err = logger.ParseLevel(getenv("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.OTELStdout, err = strconv.ParseBool(getenv("OTEL_STDOUT", "false")); err != nil {
		return Config{}, fmt.Errorf("OTEL_STDOUT: %w", err)
	}
	if cfg.OTELProbability, err = strconv.ParseFloat(getenv("OTEL_SAMPLE_PROBABILITY", "1"), 64); err != nil {
		return Config{}, fmt.Errorf("OTEL_SAMPLE_PROBABILITY: %w", err)
	}
	if cfg.OTELProbability < 0 || cfg.OTELProbability > 1 {
		return Config{}, fmt.Errorf("OTEL_SAMPLE_PROBABILITY: %v out of range [0,1]", cfg.OTELProbability)
	}

	durations := []struct {
		key string
		def string
		dst *time.Duration
	}{
		{"HTTP_READ_TIMEOUT", "5s", &cfg.ReadTimeout},
		{"HTTP_WRITE_TIMEOUT", "10s", &cfg.WriteTimeout},
		{"SHUTDOWN_GRACE", "10s", &cfg.ShutdownGrace},
	}
	for _, d := range durations {
		if *d.dst, err = time.ParseDuration(getenv(d.key, d.def)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", d.key, err)
		}
	}

	for _, origin := range strings.Split(getenv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
