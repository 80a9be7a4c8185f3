// Package types defines shared data structures (Class, Severity, Finding,
// ColumnDescriptor) used across frame, scan, diagnose, and rules packages to
// prevent import cycles.
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidArgument is returned for malformed input: a nil or empty-shaped
// table, an unrecognized class selector, or an unknown check comparator.
// It is never recovered internally; callers match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Class is the effective class of a column: the single authoritative type tag
// assigned at table construction and reused by every diagnostic.
type Class int

const (
	ClassOther Class = iota
	ClassNumeric
	ClassInteger
	ClassFactor
	ClassOrdered
	ClassCharacter
)

func (c Class) String() string {
	switch c {
	case ClassNumeric:
		return "numeric"
	case ClassInteger:
		return "integer"
	case ClassFactor:
		return "factor"
	case ClassOrdered:
		return "ordered"
	case ClassCharacter:
		return "character"
	default:
		return "other"
	}
}

// ParseClass converts a string to a Class.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numeric":
		return ClassNumeric, nil
	case "integer":
		return ClassInteger, nil
	case "factor":
		return ClassFactor, nil
	case "ordered":
		return ClassOrdered, nil
	case "character":
		return ClassCharacter, nil
	case "other":
		return ClassOther, nil
	default:
		return ClassOther, fmt.Errorf("unknown class: %q", s)
	}
}

// MarshalJSON serializes a Class as its lowercase name.
func (c Class) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// ColumnDescriptor identifies a column selected by a diagnostic.
// Pos is 1-based, matching how column positions read in reports.
type ColumnDescriptor struct {
	Name  string `json:"variable"`
	Pos   int    `json:"pos"`
	Class Class  `json:"class"`
}

// VariableClass is one row of a class report: a column name paired with its
// effective class, in table order.
type VariableClass struct {
	Variable string `json:"variable"`
	Class    Class  `json:"class"`
}

// Rate is one entry of a per-column statistic mapping, in table order.
// Value may be NaN for degenerate columns (zero length, undefined skewness).
type Rate struct {
	Variable string  `json:"variable"`
	Value    float64 `json:"value"`
}

// MarshalJSON serializes NaN values as null, which encoding/json rejects for
// raw float64 fields.
func (r Rate) MarshalJSON() ([]byte, error) {
	type alias struct {
		Variable string      `json:"variable"`
		Value    interface{} `json:"value"`
	}
	a := alias{Variable: r.Variable, Value: r.Value}
	if r.Value != r.Value { // NaN
		a.Value = nil
	}
	return json.Marshal(a)
}

// Severity represents the severity level of a quality-check finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityHigh:
		return "HIGH"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityLow:
		return "LOW"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a string to a Severity level.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL":
		return SeverityCritical, nil
	case "HIGH":
		return SeverityHigh, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "LOW":
		return SeverityLow, nil
	case "INFO":
		return SeverityInfo, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity: %q", s)
	}
}

// Finding represents a single quality-check finding on a column.
type Finding struct {
	CheckID   string   `json:"check_id"`
	CheckName string   `json:"check_name"`
	Severity  Severity `json:"severity"`
	Variable  string   `json:"variable"`
	Pos       int      `json:"pos"`
	Class     Class    `json:"class"`
	Measure   string   `json:"measure"`
	Value     float64  `json:"value"`
	Threshold float64  `json:"threshold"`
}

// CheckResult holds the complete results of a quality-check run.
type CheckResult struct {
	Findings       []Finding     `json:"findings"`
	ColumnsChecked int           `json:"columns_checked"`
	ChecksLoaded   int           `json:"checks_loaded"`
	Duration       time.Duration `json:"-"`
	Target         string        `json:"-"`
}

// MarshalJSON implements custom JSON marshaling so Duration serializes as milliseconds.
func (r CheckResult) MarshalJSON() ([]byte, error) {
	type Alias CheckResult
	return json.Marshal(struct {
		Alias
		DurationMS int64 `json:"duration_ms"`
	}{
		Alias:      Alias(r),
		DurationMS: r.Duration.Milliseconds(),
	})
}
