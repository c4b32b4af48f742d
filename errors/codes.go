package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Generation errors
const (
	// ErrCodeGeneratorFailed indicates a generator capability call failed.
	ErrCodeGeneratorFailed ErrorCode = "GENERATOR_FAILED"
	// ErrCodeGraphShape indicates a graph node the engine cannot interpret.
	ErrCodeGraphShape ErrorCode = "GRAPH_SHAPE"
	// ErrCodeStreamFailed indicates a generation stream closed in a failed state.
	ErrCodeStreamFailed ErrorCode = "STREAM_FAILED"
)

// Schema/input errors
const (
	// ErrCodeInvalidSchema indicates a dataset schema that cannot be compiled.
	ErrCodeInvalidSchema ErrorCode = "INVALID_SCHEMA"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Output errors
const (
	// ErrCodeSinkFailed indicates an output sink could not write its rows.
	ErrCodeSinkFailed ErrorCode = "SINK_FAILED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
