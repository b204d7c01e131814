// Package errors defines the domain errors surfaced to API callers.
package errors

// DomainError is a business-rule or validation failure with a stable code.
// Domain errors map to client-error responses; anything else that escapes a
// service is treated as an unexpected server error.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
