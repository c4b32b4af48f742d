// Package errors provides unified error handling for the synthkit packages.
// It implements a structured error type with machine-readable codes, cause
// wrapping, and detail maps, so failures surfaced through the streaming
// layer always reference the capability or shape failure that caused them.
package errors
