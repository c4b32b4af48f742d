package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified synthkit error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// --- Common Error Constructors ---

// GeneratorFailed creates a new Error for a failed generator capability call.
// op names the capability that failed: "visit", "num_rows", or "emit".
func GeneratorFailed(table, op string) *Error {
	return &Error{
		Code: ErrCodeGeneratorFailed, Message: fmt.Sprintf("generator for table %q failed during %s", table, op),
		Details: map[string]any{"table": table, "op": op},
	}
}

// GraphShape creates a new Error for a graph node the engine cannot interpret.
func GraphShape(reason string) *Error {
	return &Error{
		Code: ErrCodeGraphShape, Message: fmt.Sprintf("malformed generation graph: %s", reason),
	}
}

// StreamFailed creates a new Error for a generation stream that closed in a
// failed state. The original traversal failure is attached as the cause.
func StreamFailed() *Error {
	return &Error{
		Code: ErrCodeStreamFailed, Message: "generation stream closed after a traversal failure",
	}
}

// InvalidSchema creates a new Error for a dataset schema that cannot be used.
func InvalidSchema(reason string) *Error {
	return &Error{
		Code: ErrCodeInvalidSchema, Message: fmt.Sprintf("invalid dataset schema: %s", reason),
	}
}

// InvalidInput creates a new Error for invalid input.
func InvalidInput(reason string) *Error {
	return &Error{
		Code: ErrCodeInvalidInput, Message: reason,
	}
}

// Validation creates a new Error for validation failures.
func Validation(message string) *Error {
	return &Error{
		Code: ErrCodeInvalidInput, Message: message,
	}
}

// NotFound creates a new Error for a resource that was not found.
func NotFound(resource, id string) *Error {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &Error{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("%s not found", resource),
		Details: details,
	}
}

// SinkFailed creates a new Error for an output sink that could not write.
func SinkFailed(sink string) *Error {
	return &Error{
		Code: ErrCodeSinkFailed, Message: fmt.Sprintf("%s sink failed to write", sink),
		Details: map[string]any{"sink": sink},
	}
}

// Internal creates a new Error for an unexpected internal error.
func Internal(cause error) *Error {
	return &Error{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Cause: cause,
	}
}

// --- Inspection helpers ---

// IsError checks if an error is a synthkit *Error.
func IsError(err error) bool {
	var e *Error
	return stderrors.As(err, &e)
}

// AsError converts an error to a synthkit *Error if possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetCode returns the error code, or ErrCodeInternal for foreign errors.
func GetCode(err error) ErrorCode {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}
