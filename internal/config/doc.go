// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config holds the snapshot-manager configuration.
//
// A Config is built from a single timestamp and derives the calendar date
// used to name snapshots:
//
//	cfg, err := config.New(time.Date(2024, time.February, 27, 0, 0, 0, 0, time.UTC))
//	if err != nil {
//		return err
//	}
//	cfg.YYYYMMDD() // "20240227"
//
// Every example in this package is also an Example test (see example_test.go),
// so the documentation is executed by go test.
package config
