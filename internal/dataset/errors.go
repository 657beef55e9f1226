package dataset

import "fmt"

// ParseError indicates the input table is malformed, typically a missing
// required column. Loader-level only; cleaning and vectorizing never parse.
type ParseError struct {
	Column string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("parse error: column %q: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("parse error: %s", e.Reason)
}

// ConfigError indicates an out-of-range pipeline option, such as a test
// fraction outside (0,1) or a non-positive feature count.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Option, e.Reason)
}

// UnknownLabelError indicates a label (or label code) outside the fitted set.
type UnknownLabelError struct {
	Label string
	Code  int
}

func (e *UnknownLabelError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("unknown label %q", e.Label)
	}
	return fmt.Sprintf("label code %d out of fitted range", e.Code)
}
