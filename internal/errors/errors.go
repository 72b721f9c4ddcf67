// Package errors provides sentinel errors for the DashCraft CLI.
package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrConfig indicates a malformed or incomplete dashboard configuration.
	ErrConfig = errors.New("config error")

	// ErrConflict indicates two components collide on the same output path
	// or generated symbol name.
	ErrConflict = errors.New("conflict error")

	// ErrFilesystem indicates a create, write, or delete failure.
	ErrFilesystem = errors.New("filesystem error")

	// ErrUnsafePurge indicates a purge target failed the safety precondition.
	ErrUnsafePurge = errors.New("unsafe purge target")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Field is the config field name for config errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a config error with details.
func NewConfigError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "invalid configuration",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrConfig,
	}
}

// NewConflictError creates a conflict error with details.
func NewConflictError(message, field, hint string) error {
	return &DetailError{
		Type:    "component conflict",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrConflict,
	}
}

// NewFilesystemError creates a filesystem error with details.
func NewFilesystemError(message, location string, cause error) error {
	wrapped := error(ErrFilesystem)
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrFilesystem, cause)
	}
	return &DetailError{
		Type:     "filesystem operation failed",
		Message:  message,
		Location: location,
		Cause:    wrapped,
	}
}

// NewPurgeIncompleteError creates a filesystem error for a purge that
// removed some entries but could not remove others.
func NewPurgeIncompleteError(location string, removed, failed int, cause error) error {
	wrapped := error(ErrFilesystem)
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrFilesystem, cause)
	}
	return &DetailError{
		Type:     "filesystem operation failed",
		Message:  "purge incomplete, some entries could not be removed",
		Location: location,
		Context: map[string]string{
			"Removed": strconv.Itoa(removed),
			"Failed":  strconv.Itoa(failed),
		},
		Cause: wrapped,
	}
}

// NewUnsafePurgeError creates an unsafe purge error with details.
func NewUnsafePurgeError(message, location, hint string) error {
	return &DetailError{
		Type:     "refusing to purge",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrUnsafePurge,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
