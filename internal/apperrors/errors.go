package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidFormat indicates a username that does not match the allowed shape.
var ErrInvalidFormat = errors.New("invalid username (3-20 chars, alphanumeric)")

// ErrDuplicateUsername indicates an attempt to register a username that is already taken.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrInvalidCredentials indicates an unknown username or a password that does not verify.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrStorage wraps any lower-level fault from the relational store.
var ErrStorage = errors.New("storage error")

// ErrGateway wraps a failure of the external text-generation call.
var ErrGateway = errors.New("assistant gateway error")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Storage wraps a driver error so that errors.Is(err, ErrStorage) holds
// while keeping the original fault reachable.
func Storage(op string, err error) error {
	return NewAppError(500, op, errors.Join(ErrStorage, err))
}
