package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that an operation was rejected because other rows depend on the target.
var ErrConflict = errors.New("resource conflict")

// ErrIntegrity indicates a storage constraint violation that slipped past validation.
var ErrIntegrity = errors.New("integrity error")

// AppError carries an HTTP-ish status code and a client-facing message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError reports a missing row.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewConflictError reports a delete blocked by a protecting relationship.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrConflict)
}

// NewIntegrityError wraps a storage constraint violation.
func NewIntegrityError(message string, cause error) *AppError {
	return NewAppError(http.StatusBadRequest, message, fmt.Errorf("%w: %w", ErrIntegrity, cause))
}

// FieldErrors maps a payload field name to the reasons it was rejected.
type FieldErrors map[string][]string

// Add records a message against field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// ValidationError is returned when a payload fails field-level checks.
type ValidationError struct {
	Fields FieldErrors
}

// NewValidationError wraps field errors so that errors.Is(err, ErrValidation) holds.
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NewFieldError is a shortcut for a single failing field.
func NewFieldError(field, message string) *ValidationError {
	fields := FieldErrors{}
	fields.Add(field, message)
	return NewValidationError(fields)
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
