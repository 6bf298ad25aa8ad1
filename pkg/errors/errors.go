package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures table document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigurationError reports a mutation that targets something the table
// shape does not have, such as a style path segment that does not exist.
// The mutation that produced it never partially applies.
type ConfigurationError struct {
	Path    string
	Segment string
	Message string
}

// NewConfigurationError constructs a ConfigurationError for the given path.
// Segment names the first element of the path that could not be resolved and
// may be empty when the path exists but the operation is not allowed on it.
func NewConfigurationError(path, segment, message string) error {
	return &ConfigurationError{Path: path, Segment: segment, Message: message}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Segment != "" {
		return fmt.Sprintf("configuration error: %s: property %s does not exist", e.Path, e.Segment)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Path, e.Message)
}

// LookupKind identifies which registry a LookupMiss came from.
type LookupKind string

const (
	LookupIcon       LookupKind = "icon"
	LookupBreakpoint LookupKind = "breakpoint"
)

// LookupMiss describes a lookup that did not find its key. Render paths log it
// and continue with Fallback; strict lookups return it.
type LookupMiss struct {
	Kind     LookupKind
	Key      string
	Fallback string
}

// NewLookupMiss constructs a LookupMiss.
func NewLookupMiss(kind LookupKind, key, fallback string) error {
	return &LookupMiss{Kind: kind, Key: key, Fallback: fallback}
}

func (e *LookupMiss) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	if e.Key == "" {
		fmt.Fprintf(&b, "%s lookup: missing key", e.Kind)
	} else {
		fmt.Fprintf(&b, "%s lookup: %s not found", e.Kind, e.Key)
	}
	if e.Fallback != "" {
		fmt.Fprintf(&b, " (using %s)", e.Fallback)
	}
	return b.String()
}
