// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"time"
)

// yyyymmddLayout renders year, month and day zero-padded with no separators.
const yyyymmddLayout = "20060102"

const (
	minYear = 0
	maxYear = 9999
)

// Config is the immutable snapshot-manager configuration.
// It is safe for concurrent use once constructed.
type Config struct {
	datetime time.Time
}

// New creates a Config for the given timestamp.
//
// The zero time.Time counts as an absent timestamp. Years that cannot be
// rendered in four digits are rejected as well, so YYYYMMDD always yields
// exactly eight digits.
func New(datetime time.Time) (*Config, error) {
	if datetime.IsZero() {
		return nil, fmt.Errorf("datetime is required: %w", ErrInvalidArgument)
	}
	if y := datetime.Year(); y < minYear || y > maxYear {
		return nil, fmt.Errorf("datetime year %d out of range [%d, %d]: %w", y, minYear, maxYear, ErrInvalidArgument)
	}
	return &Config{datetime: datetime}, nil
}

// MustNew is like New but panics on error.
func MustNew(datetime time.Time) *Config {
	cfg, err := New(datetime)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Datetime returns the timestamp the Config was built from.
func (c *Config) Datetime() time.Time {
	return c.datetime
}

// YYYYMMDD returns the calendar date of the stored timestamp as eight digits,
// e.g. "20240227". The date is read in the timestamp's own location; the time
// of day never affects the result.
func (c *Config) YYYYMMDD() string {
	return c.datetime.Format(yyyymmddLayout)
}

// String returns YYYYMMDD.
func (c *Config) String() string {
	return c.YYYYMMDD()
}
