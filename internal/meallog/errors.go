package meallog

import "fmt"

// ValidationError reports bad user input on a meal commit. It is surfaced to
// the caller for correction, never silently dropped.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation referencing a meal id absent from the
// store. The operation is aborted.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("meal %s not found", e.ID)
}
