package apperrors

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the resource is in a state that does not allow the operation,
// e.g. updating a person version that has already been superseded.
var ErrConflict = errors.New("resource state conflict")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is authenticated but lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrTokenRevoked indicates that an access token was invalidated by a logout.
var ErrTokenRevoked = errors.New("token has been revoked")

// ErrLockedOut indicates that the account is temporarily locked after repeated failed logins.
var ErrLockedOut = errors.New("account is locked out")

// AppError is an error carrying the HTTP status code and a client-facing message.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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

// NewUnauthorizedError creates a 401 AppError wrapping ErrUnauthorized.
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

// ValidationError collects field-level validation messages keyed by the JSON field name.
// It unwraps to ErrValidation.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates a ValidationError holding a single field message.
func NewValidationError(field, message string) *ValidationError {
	v := &ValidationError{Fields: map[string][]string{}}
	v.Add(field, message)
	return v
}

// Add appends a message for the given field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field message was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
