package rules

import (
	"fmt"

	"github.com/garagon/yacare/internal/types"
)

// Compile converts a RawCheck into a CompiledCheck ready for evaluation.
func Compile(raw RawCheck) (*CompiledCheck, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("check missing ID")
	}

	sev, err := types.ParseSeverity(raw.Severity)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", raw.ID, err)
	}

	switch Measure(raw.Measure) {
	case MeasureMissingRate, MeasureOutlierRate, MeasureAbsSkewness, MeasureDistinct, MeasureCardinalityRatio:
	default:
		return nil, fmt.Errorf("check %s: %w: unknown measure %q", raw.ID, types.ErrInvalidArgument, raw.Measure)
	}

	switch Op(raw.Op) {
	case OpGT, OpGE, OpLT, OpLE, OpEQ:
	default:
		return nil, fmt.Errorf("check %s: %w: unknown op %q", raw.ID, types.ErrInvalidArgument, raw.Op)
	}

	compiled := &CompiledCheck{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		Severity:    sev,
		Measure:     Measure(raw.Measure),
		Op:          Op(raw.Op),
		Threshold:   raw.Threshold,
	}

	for _, s := range raw.Classes {
		class, err := types.ParseClass(s)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", raw.ID, err)
		}
		compiled.Classes = append(compiled.Classes, class)
	}

	return compiled, nil
}

// CompileAll compiles a slice of raw checks, returning compiled checks and any errors.
func CompileAll(raws []RawCheck) ([]*CompiledCheck, []error) {
	var checks []*CompiledCheck
	var errs []error
	for _, raw := range raws {
		cc, err := Compile(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		checks = append(checks, cc)
	}
	return checks, errs
}

// CheckOverride allows per-check severity change or disable from config.
type CheckOverride struct {
	Severity string
	Disabled bool
}

// ApplyOverrides applies config-based check overrides to compiled checks.
// Disabled checks are removed. Severity overrides update the check's severity.
// Invalid severity values produce an error but keep the original check.
func ApplyOverrides(compiled []*CompiledCheck, overrides map[string]CheckOverride) ([]*CompiledCheck, []error) {
	var result []*CompiledCheck
	var errs []error
	for _, check := range compiled {
		ovr, ok := overrides[check.ID]
		if !ok {
			result = append(result, check)
			continue
		}
		if ovr.Disabled {
			continue
		}
		if ovr.Severity != "" {
			sev, err := types.ParseSeverity(ovr.Severity)
			if err != nil {
				errs = append(errs, fmt.Errorf("check %s override: %w", check.ID, err))
				result = append(result, check)
				continue
			}
			check.Severity = sev
		}
		result = append(result, check)
	}
	return result, errs
}

// FilterByIDs removes checks whose IDs are in the disabled set.
func FilterByIDs(compiled []*CompiledCheck, disabled map[string]bool) []*CompiledCheck {
	var result []*CompiledCheck
	for _, check := range compiled {
		if !disabled[check.ID] {
			result = append(result, check)
		}
	}
	return result
}
