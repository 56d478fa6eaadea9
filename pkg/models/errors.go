package models

import "strings"

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// SetupError reports that the required directory layout is not in place.
// It is fatal and raised before any file is compared.
type SetupError struct {
	Expected []string
	Missing  []string
}

func (e *SetupError) Error() string {
	return "directories not found (missing: " + strings.Join(e.Missing, ", ") +
		"); expected: " + strings.Join(e.Expected, " and ")
}
