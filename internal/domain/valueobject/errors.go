package valueobject

import "fmt"

// ValidationError reports a client-correctable problem with a request field.
// It is raised before any calculator or repository is reached.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a named field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// DomainError reports a violated calculation precondition. Callers are
// expected to have validated inputs upstream; a DomainError is a programming
// or data error, not a user mistake.
type DomainError struct {
	Op      string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// NewDomainError builds a DomainError for a named operation.
func NewDomainError(op, format string, args ...any) *DomainError {
	return &DomainError{Op: op, Message: fmt.Sprintf(format, args...)}
}
