// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Process fields
	FieldService   = "service"
	FieldVersion   = "version"
	FieldComponent = "component"

	// Config fields
	FieldKey    = "key"
	FieldSource = "source"

	// Snapshot date fields
	FieldDatetime = "datetime"
	FieldYYYYMMDD = "yyyymmdd"
	FieldOutput   = "output"
)
