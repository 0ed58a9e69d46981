// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestParseString(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		envSet       bool
		want         string
		wantSource   string
	}{
		{
			name:         "environment variable set",
			key:          "TEST_STRING",
			defaultValue: "default",
			envValue:     "from-env",
			envSet:       true,
			want:         "from-env",
			wantSource:   "environment",
		},
		{
			name:         "environment variable not set",
			key:          "TEST_STRING_UNSET",
			defaultValue: "default",
			want:         "default",
			wantSource:   "default",
		},
		{
			name:         "environment variable empty string",
			key:          "TEST_STRING_EMPTY",
			defaultValue: "default",
			envValue:     "",
			envSet:       true,
			want:         "default",
			wantSource:   "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envSet {
				t.Setenv(tt.key, tt.envValue)
			}

			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

			got := parseStringWithLogger(logger, tt.key, tt.defaultValue)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, buf.String(), `"source":"`+tt.wantSource+`"`)
			assert.Contains(t, buf.String(), `"key":"`+tt.key+`"`)
		})
	}
}

func TestFromEnv(t *testing.T) {
	clock := time.Date(2025, time.March, 9, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		envSet bool
		env    string
		want   string
	}{
		{name: "unset uses clock", want: "20250309"},
		{name: "empty uses clock", envSet: true, env: "", want: "20250309"},
		{name: "iso date", envSet: true, env: "2024-02-27", want: "20240227"},
		{name: "compact date", envSet: true, env: "19990101", want: "19990101"},
		{name: "rfc3339", envSet: true, env: "2024-02-27T23:59:59Z", want: "20240227"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envSet {
				t.Setenv(EnvDatetime, tt.env)
			}
			cfg, err := FromEnv(fixedClock(clock))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.YYYYMMDD())
		})
	}
}

func TestFromEnv_InvalidValueIsNotReplacedByClock(t *testing.T) {
	t.Setenv(EnvDatetime, "not-a-date")

	cfg, err := FromEnv(fixedClock(time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), EnvDatetime)
}

func TestFromEnv_ZeroClock(t *testing.T) {
	_, err := FromEnv(fixedClock(time.Time{}))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFromEnv_NilClockUsesNow(t *testing.T) {
	before := time.Now()
	cfg, err := FromEnv(nil)
	require.NoError(t, err)
	after := time.Now()

	assert.Contains(t, []string{before.Format("20060102"), after.Format("20060102")}, cfg.YYYYMMDD())
}

func TestFromEnvWithLogger_LogsToGivenLogger(t *testing.T) {
	t.Setenv(EnvDatetime, "2024-02-27")

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	cfg, err := FromEnvWithLogger(logger, fixedClock(time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, "20240227", cfg.YYYYMMDD())
	assert.Contains(t, buf.String(), `"source":"environment"`)
	assert.Contains(t, buf.String(), `"yyyymmdd":"20240227"`)
	assert.Contains(t, buf.String(), "config loaded from environment")
}

func TestFromEnvWithLogger_DisabledLoggerStaysQuiet(t *testing.T) {
	t.Setenv(EnvDatetime, "")

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	cfg, err := FromEnvWithLogger(logger, fixedClock(time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, "20250309", cfg.YYYYMMDD())
	assert.Zero(t, buf.Len())
}
