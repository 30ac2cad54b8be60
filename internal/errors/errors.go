// Package errors provides structured error types and exit codes for tisgen.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/AndreyAkinshin/tisgen/pkg/tisgen"
)

// Exit codes returned by the tisgen CLI, mirroring the public constants.
const (
	ExitSuccess          = tisgen.ExitSuccess     // Success
	ExitRuntimeError     = tisgen.ExitFailure     // Runtime error (write failed, etc.)
	ExitConfigError      = tisgen.ExitConfigError // Configuration error (invalid settings, malformed compile database, etc.)
	ExitEnvironmentError = tisgen.ExitEnvError    // Environment error (expected directory or file missing)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindParse
)

// TisgenError is the base error type for tisgen.
type TisgenError struct {
	Kind    ErrorKind
	Message string
	Path    string // File or directory the error refers to, if any
	Cause   error  // Underlying error
}

func (e *TisgenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TisgenError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *TisgenError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation, KindParse:
		return ExitConfigError
	case KindNotFound:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *TisgenError {
	return &TisgenError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *TisgenError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *TisgenError {
	return &TisgenError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *TisgenError {
	return Config(fmt.Sprintf(format, args...))
}

// Validation creates a validation error for a generated or loaded document.
func Validation(path string, cause error) *TisgenError {
	return &TisgenError{
		Kind:    KindValidation,
		Message: fmt.Sprintf("'%s' failed validation", path),
		Path:    path,
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *TisgenError {
	return &TisgenError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// MissingDirectory reports that a required directory does not exist.
func MissingDirectory(path string) *TisgenError {
	return &TisgenError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Directory '%s' not found.", path),
		Path:    path,
	}
}

// MissingFile reports that a required file does not exist.
func MissingFile(path string) *TisgenError {
	return &TisgenError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("File '%s' not found.", path),
		Path:    path,
	}
}

// MalformedLog reports a compile command database that could not be decoded.
func MalformedLog(path string, cause error) *TisgenError {
	return &TisgenError{
		Kind:    KindParse,
		Message: fmt.Sprintf("malformed compile command database '%s'", path),
		Path:    path,
		Cause:   cause,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if te, ok := As(err); ok {
		return te.ExitCode()
	}
	return ExitRuntimeError
}

// As finds the first *TisgenError in err's chain.
func As(err error) (*TisgenError, bool) {
	var te *TisgenError
	if stderrors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// IsNotFound reports whether err is a missing directory or file error.
func IsNotFound(err error) bool {
	te, ok := As(err)
	return ok && te.Kind == KindNotFound
}
