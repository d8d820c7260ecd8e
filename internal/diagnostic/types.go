package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"unionize/internal/common"
)

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Union names the union declaration this relates to (if any).
	Union string
	// Variant names the variant this relates to (if any).
	Variant string
	// Suggestions are likely intended names.
	Suggestions []string
	// Source names the schema file the diagnostic was found in (if any).
	Source string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add files d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, union, variant string, suggestions ...string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Union: union, Variant: variant, Suggestions: suggestions})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, union, variant string, suggestions ...string) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Union: union, Variant: variant, Suggestions: suggestions})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, union, variant string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Union: union, Variant: variant})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// SetSource records src as the source of every diagnostic that has none yet.
func (d *Diagnostics) SetSource(src string) {
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for i := range list {
			if list[i].Source == "" {
				list[i].Source = src
			}
		}
	}
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Err returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Location renders "union.variant", "union" or "".
func (d Diagnostic) Location() string {
	switch {
	case d.Union != "" && d.Variant != "":
		return d.Union + "." + d.Variant
	default:
		return d.Union + d.Variant
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, " or "))
	}

	if loc := d.Location(); loc != "" {
		msg = loc + ": " + msg
	}

	if d.Source != "" {
		msg = d.Source + ": " + msg
	}

	return msg
}
