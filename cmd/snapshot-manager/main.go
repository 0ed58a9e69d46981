// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// snapshot-manager prints the YYYYMMDD snapshot date for a timestamp.
//
// Usage:
//
//	snapshot-manager
//	snapshot-manager -datetime 2024-02-27
//	snapshot-manager -datetime 2024-02-27T13:04:05Z -output yaml
//
// The timestamp comes from -datetime, then SNAPSHOT_MANAGER_DATETIME, then
// the current clock.
//
// Exit codes:
//   - 0: Date printed
//   - 1: Invalid timestamp or output failure
//   - 2: Usage error
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ManuGH/snapshot-manager/internal/config"
	"github.com/ManuGH/snapshot-manager/internal/log"
	"github.com/ManuGH/snapshot-manager/internal/version"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// record is the structured form of a Config for json and yaml output.
type record struct {
	Datetime string `json:"datetime" yaml:"datetime"`
	YYYYMMDD string `json:"yyyymmdd" yaml:"yyyymmdd"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, time.Now))
}

func run(args []string, stdout, stderr io.Writer, now func() time.Time) int {
	fs := flag.NewFlagSet("snapshot-manager", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		datetime    string
		output      string
		logLevel    string
		showVersion bool
	)
	fs.StringVar(&datetime, "datetime", "", "timestamp (RFC 3339, YYYY-MM-DD or YYYYMMDD); defaults to $"+config.EnvDatetime+" or now")
	fs.StringVar(&output, "output", outputText, "output format: text, json or yaml")
	fs.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %v\n", fs.Args())
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	switch output {
	case outputText, outputJSON, outputYAML:
	default:
		fmt.Fprintf(stderr, "Error: unknown -output %q (want text, json or yaml)\n", output)
		return 2
	}

	if logLevel != "" {
		if _, err := zerolog.ParseLevel(logLevel); err != nil {
			fmt.Fprintf(stderr, "Error: invalid -log-level %q: %v\n", logLevel, err)
			return 2
		}
	}
	base := log.New(log.Config{Output: stderr, Level: logLevel})
	logger := base.With().Str(log.FieldComponent, "cli").Logger()

	cfg, err := resolve(base.With().Str(log.FieldComponent, "config").Logger(), datetime, now)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error:\n  %v\n", err)
		return 1
	}

	logger.Debug().
		Time(log.FieldDatetime, cfg.Datetime()).
		Str(log.FieldYYYYMMDD, cfg.YYYYMMDD()).
		Str(log.FieldOutput, output).
		Msg("resolved snapshot date")

	if err := write(stdout, output, cfg); err != nil {
		logger.Error().Err(err).Str(log.FieldOutput, output).Msg("failed to write output")
		return 1
	}
	return 0
}

func resolve(logger zerolog.Logger, datetime string, now func() time.Time) (*config.Config, error) {
	if datetime != "" {
		return config.Parse(datetime)
	}
	return config.FromEnvWithLogger(logger, now)
}

func write(w io.Writer, output string, cfg *config.Config) error {
	rec := record{
		Datetime: cfg.Datetime().Format(time.RFC3339Nano),
		YYYYMMDD: cfg.YYYYMMDD(),
	}

	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, rec.YYYYMMDD)
		return err
	}
}
