package domain

import "fmt"

// Error codes returned by the billing core. These are expected outcomes the
// caller branches on, not process failures.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeReferenceNotFound = "REFERENCE_NOT_FOUND"
	CodeConflict          = "CONFLICT"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError reports one or more invalid fields. The map keys name the
// offending fields so the caller can correct and retry.
func NewValidationError(fields map[string]string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

// NewNotFoundError reports a missing (or soft-deleted) target entity.
func NewNotFoundError(entity string, id uint) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with id %d not found", entity, id),
	}
}

// NewReferenceNotFoundError reports a missing required related entity.
func NewReferenceNotFoundError(entity string, id uint) *DomainError {
	return &DomainError{
		Code:    CodeReferenceNotFound,
		Message: fmt.Sprintf("%s with id %d not found", entity, id),
	}
}

// NewConflictError reports a destructive operation blocked by a
// referential-integrity guard.
func NewConflictError(message string) *DomainError {
	return &DomainError{
		Code:    CodeConflict,
		Message: message,
	}
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code string) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == code
}
