package models

import "fmt"

// InvalidDateMessage is returned to callers for any unparseable date
const InvalidDateMessage = "Invalid date input given"

// ValidationError represents a validation error caused by caller-supplied or stored data
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"error"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewInvalidDateError creates a ValidationError for an unparseable date field
func NewInvalidDateError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: InvalidDateMessage}
}

// InfrastructureError wraps a data store failure. Its details are for logs only.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError tags err as an infrastructure failure of op
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}
