// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import "errors"

var (
	// ErrInvalidArgument classifies construction and parse failures caused by a missing
	// or unusable timestamp.
	// Use errors.Is(err, ErrInvalidArgument) instead of string matching.
	ErrInvalidArgument = errors.New("invalid argument")
)
