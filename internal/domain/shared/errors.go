package shared

import (
	"errors"
	"fmt"
)

// Error codes shared by every module
const (
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidData     = "INVALID_DATA"
	CodeNotAllowed      = "NOT_ALLOWED"
	CodeDuplicate       = "DUPLICATE_ERROR"
	CodeConflict        = "CONFLICT"
	CodeUnexpectedState = "UNEXPECTED_STATE"
	CodeDBError         = "DB_ERROR"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code.
// This lets errors.Is(err, ErrNotFound) match any not-found error.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a NOT_FOUND error with a formatted message
func NewNotFoundError(format string, args ...any) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf(format, args...))
}

// NewInvalidDataError creates an INVALID_DATA error with a formatted message
func NewInvalidDataError(format string, args ...any) *DomainError {
	return NewDomainError(CodeInvalidData, fmt.Sprintf(format, args...))
}

// NewUnexpectedStateError creates an UNEXPECTED_STATE error with a formatted message
func NewUnexpectedStateError(format string, args ...any) *DomainError {
	return NewDomainError(CodeUnexpectedState, fmt.Sprintf(format, args...))
}

// Common domain errors
var (
	ErrNotFound        = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidData     = NewDomainError(CodeInvalidData, "Invalid data provided")
	ErrNotAllowed      = NewDomainError(CodeNotAllowed, "Operation not allowed")
	ErrDuplicate       = NewDomainError(CodeDuplicate, "Resource already exists")
	ErrConflict        = NewDomainError(CodeConflict, "Resource was modified by another process")
	ErrUnexpectedState = NewDomainError(CodeUnexpectedState, "Unexpected state")
	ErrDatabase        = NewDomainError(CodeDBError, "Database error")
)

// ErrorCode extracts the domain error code from err, or "" when err is not a DomainError
func ErrorCode(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}
