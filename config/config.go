// Package config loads runtime settings for the trainres command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds all settings for one trainres session.
type Config struct {
	// Persistence
	DataDir string

	// Logging
	LogLevel zapcore.Level

	// Distance used for trains.txt records written without one.
	DefaultDistance int64

	// bcrypt cost for new account passwords.
	BcryptCost int
}

// Default values.
const (
	DefaultDataDir       = "."
	DefaultLogLevel      = zapcore.InfoLevel
	DefaultTrainDistance = 100
	DefaultBcryptCost    = 10
)

const (
	envDataDir         = "TRAINRES_DATA_DIR"
	envLogLevel        = "TRAINRES_LOG_LEVEL"
	envDefaultDistance = "TRAINRES_DEFAULT_DISTANCE"
	envBcryptCost      = "TRAINRES_BCRYPT_COST"
)

// Load reads configuration from environment variables with sensible
// defaults. Each file in envFiles is loaded into the environment first if
// it exists; variables already set are not overridden.
//
// The returned Config is always usable. The error reports env files that
// exist but could not be loaded; their variables are skipped.
func Load(envFiles ...string) (*Config, error) {
	var errs []error
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			errs = append(errs, fmt.Errorf("config: load %s: %w", f, err))
		}
	}

	cfg := &Config{
		DataDir:         getEnv(envDataDir, DefaultDataDir),
		LogLevel:        getEnvLevel(envLogLevel, DefaultLogLevel),
		DefaultDistance: int64(getEnvInt(envDefaultDistance, DefaultTrainDistance)),
		BcryptCost:      getEnvInt(envBcryptCost, DefaultBcryptCost),
	}
	if cfg.DefaultDistance <= 0 {
		cfg.DefaultDistance = DefaultTrainDistance
	}

	return cfg, errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvLevel(key string, defaultValue zapcore.Level) zapcore.Level {
	if value := os.Getenv(key); value != "" {
		if lvl, err := zapcore.ParseLevel(value); err == nil {
			return lvl
		}
	}
	return defaultValue
}
