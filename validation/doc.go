// Package validation provides struct validation for synthkit using
// go-playground/validator struct tags. Dataset schemas and tool configs
// are validated with it before a generation run starts.
package validation
