package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess      = 0 // Indicates successful execution.
	ExitErrorGeneric = 1 // Indicates a generic error (discovery, malformed input, ...).
	ExitErrorConfig  = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// NoResultsError is returned when a discovery root holds no result files or
// no configuration files.
type NoResultsError struct {
	// Root is the directory that was searched.
	Root string
}

// Error returns a message naming the searched root.
func (e NoResultsError) Error() string {
	return fmt.Sprintf("no results found in %s", e.Root)
}

// PairingError reports a run directory where a result file has no matching
// configuration file, or the other way around.
type PairingError struct {
	// Dir is the run directory holding the orphan file.
	Dir string
	// Missing is the file name that was expected next to the orphan.
	Missing string
}

// Error returns a message naming the directory and the missing file.
func (e PairingError) Error() string {
	return fmt.Sprintf("run directory %s has no %s", e.Dir, e.Missing)
}

// BaselineCardinalityError is returned when the baseline root does not yield
// exactly one run.
type BaselineCardinalityError struct {
	// Root is the baseline directory.
	Root string
	// Count is the number of runs found under Root.
	Count int
}

// Error returns a message with the offending run count.
func (e BaselineCardinalityError) Error() string {
	return fmt.Sprintf("there should be only one baseline: found %d runs in %s", e.Count, e.Root)
}

// DuplicateKeyError is returned when two runs share the same key value.
type DuplicateKeyError struct {
	// Column is the key column name.
	Column string
	// Key is the duplicated value.
	Key string
}

// Error returns a message naming the duplicated key.
func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s %q", e.Column, e.Key)
}

// MissingColumnError is returned when a required column is absent from a run.
type MissingColumnError struct {
	// Column is the required column name.
	Column string
	// Source identifies the run or file lacking the column.
	Source string
}

// Error returns a message naming the column and its source.
func (e MissingColumnError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("missing column %q", e.Column)
	}
	return fmt.Sprintf("missing column %q in %s", e.Column, e.Source)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field (or file) that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error returned by the pipeline to a process exit code.
// Configuration errors map to ExitErrorConfig; every other failure is generic.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
