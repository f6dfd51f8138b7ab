package models

import "fmt"

// ValidationError reports a field constraint violated by seed data.
// It can only surface during startup validation; the server refuses to
// boot with one.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}
