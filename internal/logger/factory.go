package logger

import (
	"os"
	"strings"
)

// NewFromEnv creates a logger based on environment variables.
func NewFromEnv() (Logger, error) {
	return NewZapLogger(configFromEnv())
}

// NewWithComponent creates a logger with a component field pre-set.
func NewWithComponent(component string) (Logger, error) {
	l, err := NewZapLogger(configFromEnv())
	if err != nil {
		return nil, err
	}
	return l.With(String("component", component)), nil
}

func configFromEnv() Config {
	cfg := DefaultConfig()
	if strings.ToLower(os.Getenv("RPGKIT_ENV")) != "production" {
		cfg = DevelopmentConfig()
	}

	if level := os.Getenv("RPGKIT_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("RPGKIT_LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	if dev := os.Getenv("RPGKIT_LOG_DEVELOPMENT"); dev != "" {
		cfg.Development = strings.ToLower(dev) == "true"
	}
	return cfg
}
