// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ManuGH/snapshot-manager/internal/log"
	"github.com/rs/zerolog"
)

// EnvDatetime overrides the clock when building a Config from the environment.
const EnvDatetime = "SNAPSHOT_MANAGER_DATETIME"

// ParseString reads a string from environment variable or returns default value.
// It logs the source (environment or default) for observability.
func ParseString(key, defaultValue string) string {
	return parseStringWithLogger(log.WithComponent("config"), key, defaultValue)
}

func parseStringWithLogger(logger zerolog.Logger, key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		if value == "" {
			logger.Debug().
				Str(log.FieldKey, key).
				Str("default", defaultValue).
				Str(log.FieldSource, "default").
				Msg("using default value (environment variable is empty)")
			return defaultValue
		}
		logger.Debug().
			Str(log.FieldKey, key).
			Str("value", value).
			Str(log.FieldSource, "environment").
			Msg("using environment variable")
		return value
	}
	logger.Debug().
		Str(log.FieldKey, key).
		Str("default", defaultValue).
		Str(log.FieldSource, "default").
		Msg("using default value")
	return defaultValue
}

// FromEnv builds a Config from SNAPSHOT_MANAGER_DATETIME, falling back to now()
// when the variable is unset or empty. A nil now means time.Now.
// An unparsable value is an error; it is never replaced by the clock.
func FromEnv(now func() time.Time) (*Config, error) {
	return FromEnvWithLogger(log.WithComponent("config"), now)
}

// FromEnvWithLogger is FromEnv logging to the given logger instead of the
// global one.
func FromEnvWithLogger(logger zerolog.Logger, now func() time.Time) (*Config, error) {
	if now == nil {
		now = time.Now
	}
	raw := parseStringWithLogger(logger, EnvDatetime, "")
	if raw == "" {
		return New(now())
	}
	t, err := ParseDatetime(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvDatetime, err)
	}
	cfg, err := New(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvDatetime, err)
	}
	logger.Debug().
		Time(log.FieldDatetime, t).
		Str(log.FieldYYYYMMDD, cfg.YYYYMMDD()).
		Msg("config loaded from environment")
	return cfg, nil
}
