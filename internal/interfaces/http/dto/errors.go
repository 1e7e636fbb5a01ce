// Package dto holds the request and response shapes of the admin API.
package dto

import (
	"net/http"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
)

// API error codes
const (
	ErrCodeInternal        = "ERR_INTERNAL"
	ErrCodeNotFound        = "ERR_NOT_FOUND"
	ErrCodeInvalidData     = "ERR_INVALID_DATA"
	ErrCodeNotAllowed      = "ERR_NOT_ALLOWED"
	ErrCodeDuplicate       = "ERR_DUPLICATE"
	ErrCodeConflict        = "ERR_CONFLICT"
	ErrCodeUnexpectedState = "ERR_UNEXPECTED_STATE"
	ErrCodeDatabase        = "ERR_DATABASE"
	ErrCodeValidation      = "ERR_VALIDATION"
	ErrCodeBadRequest      = "ERR_BAD_REQUEST"
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
	ErrCodeUnauthorized    = "ERR_UNAUTHORIZED"
)

// domainCodes maps domain error codes to API error codes
var domainCodes = map[string]string{
	shared.CodeNotFound:        ErrCodeNotFound,
	shared.CodeInvalidData:     ErrCodeInvalidData,
	shared.CodeNotAllowed:      ErrCodeNotAllowed,
	shared.CodeDuplicate:       ErrCodeDuplicate,
	shared.CodeConflict:        ErrCodeConflict,
	shared.CodeUnexpectedState: ErrCodeUnexpectedState,
	shared.CodeDBError:         ErrCodeDatabase,
}

// errorStatus maps API error codes to HTTP status codes
var errorStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeInvalidData:     http.StatusBadRequest,
	ErrCodeNotAllowed:      http.StatusBadRequest,
	ErrCodeDuplicate:       http.StatusUnprocessableEntity,
	ErrCodeConflict:        http.StatusConflict,
	ErrCodeUnexpectedState: http.StatusInternalServerError,
	ErrCodeDatabase:        http.StatusInternalServerError,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
}

// APIErrorCode returns the API code of a domain error code, ERR_INTERNAL when unknown
func APIErrorCode(domainCode string) string {
	if code, ok := domainCodes[domainCode]; ok {
		return code
	}
	return ErrCodeInternal
}

// HTTPStatus returns the HTTP status of an API error code, 500 when unknown
func HTTPStatus(code string) int {
	if status, ok := errorStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
