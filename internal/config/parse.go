// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"strings"
	"time"
)

// datetimeLayouts are tried in order. Date-only layouts parse as UTC midnight.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02",
	yyyymmddLayout,
}

// ParseDatetime parses an RFC 3339 timestamp, an ISO date (2024-02-27) or a
// compact date (20240227).
func ParseDatetime(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty datetime: %w", ErrInvalidArgument)
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q (want RFC 3339, YYYY-MM-DD or YYYYMMDD): %w", v, ErrInvalidArgument)
}

// Parse is ParseDatetime followed by New.
func Parse(s string) (*Config, error) {
	t, err := ParseDatetime(s)
	if err != nil {
		return nil, err
	}
	return New(t)
}
