package apperror

import (
	"fmt"
	"net/http"
)

// Kind names the category of an application error. It is echoed to clients
// in the "error" field of error responses.
type Kind string

const (
	KindNotFound            Kind = "NotFound"
	KindUnauthorized        Kind = "Unauthorized"
	KindForbidden           Kind = "Forbidden"
	KindBadRequest          Kind = "BadRequest"
	KindValidation          Kind = "Validation"
	KindConflict            Kind = "Conflict"
	KindDuplicateKey        Kind = "DuplicateKey"
	KindInternalServerError Kind = "InternalServerError"
)

type AppError struct {
	StatusCode int
	Message    string
	Kind       Kind
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(statusCode int, message string, kind Kind) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Kind: kind}
}

// Wrap keeps the cause for logging while exposing only message to clients.
func Wrap(err error, statusCode int, message string, kind Kind) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Kind: kind, Err: err}
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, KindNotFound)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, KindUnauthorized)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, KindForbidden)
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, KindBadRequest)
}

func Validation(message string) *AppError {
	return New(http.StatusBadRequest, message, KindValidation)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, KindConflict)
}

func Internal(err error) *AppError {
	return Wrap(err, http.StatusInternalServerError, "Internal server error", KindInternalServerError)
}
