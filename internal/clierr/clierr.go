// Package clierr defines structured error types for taskninja commands.
// Errors carry a machine-readable code, a human-readable message,
// and optional details for JSON output.
package clierr

import (
	"errors"
	"fmt"
	"strconv"
)

// Error code constants. Uppercase, underscore-separated, stable across minor versions.
const (
	InvalidMainOperation    = "INVALID_MAIN_OPERATION"
	InvalidHelpOperation    = "INVALID_HELP_OPERATION"
	MissingRequiredArgument = "MISSING_REQUIRED_ARGUMENT"
	InvalidArgument         = "INVALID_ARGUMENT"
	TaskNotFound            = "TASK_NOT_FOUND"
	SaveFailed              = "SAVE_FAILED"
	ReadFailed              = "READ_FAILED"
	InternalError           = "INTERNAL_ERROR"
)

// Error represents a structured CLI error with a machine-readable code.
type Error struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithDetails returns the error with the given details map attached.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// ExitCode returns 2 for InternalError, 1 for all others.
func (e *Error) ExitCode() int {
	if e.Code == InternalError {
		return 2 //nolint:mnd // exit code 2 for internal errors
	}
	return 1
}

// CodeOf returns the code of err if it is (or wraps) an *Error, else "".
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// NewInvalidMainOperation reports an unknown first token.
func NewInvalidMainOperation(operation string) *Error {
	return Newf(InvalidMainOperation, "Invalid main operation. '%s' not found.", operation).
		WithDetails(map[string]any{"operation": operation})
}

// NewInvalidHelpOperation reports a help request for an unknown operation.
func NewInvalidHelpOperation(operation string) *Error {
	return Newf(InvalidHelpOperation, "Invalid help operation. '%s' not found.", operation).
		WithDetails(map[string]any{"operation": operation})
}

// NewMissingRequiredArgument reports an argument the operation cannot run without.
func NewMissingRequiredArgument(operation, argument string) *Error {
	return Newf(MissingRequiredArgument,
		"Missing required argument '%s' for operation '%s'.", argument, operation).
		WithDetails(map[string]any{"operation": operation, "argument": argument})
}

// NewInvalidArgument reports an argument the operation does not accept.
func NewInvalidArgument(operation, argument string) *Error {
	return Newf(InvalidArgument,
		"Invalid argument '%s' for operation '%s'.", argument, operation).
		WithDetails(map[string]any{"operation": operation, "argument": argument})
}

// NewTaskNotFound reports a task position that does not exist.
func NewTaskNotFound(token string) *Error {
	return Newf(TaskNotFound, "Task not found: %s", token).
		WithDetails(map[string]any{"task": token})
}

// NewTaskIndexNotFound reports a 0-based list index as its 1-based position.
func NewTaskIndexNotFound(index int) *Error {
	return NewTaskNotFound(strconv.Itoa(index + 1))
}

// NewSaveFailed wraps a persistence write failure.
func NewSaveFailed(err error) *Error {
	return &Error{Code: SaveFailed, Message: "Error saving tasks: " + err.Error(), Err: err}
}

// NewReadFailed wraps a persistence read failure.
func NewReadFailed(err error) *Error {
	return &Error{Code: ReadFailed, Message: "Error reading tasks: " + err.Error(), Err: err}
}
