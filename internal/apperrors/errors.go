package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is authenticated but may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or rejected credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidToken indicates a single-use token that does not exist or was already consumed.
var ErrInvalidToken = errors.New("invalid or already used token")

// ErrTokenExpired indicates a single-use token whose expiry has elapsed.
var ErrTokenExpired = errors.New("token expired")

// ErrNotVerified indicates a password login for an account whose email is not confirmed yet.
var ErrNotVerified = errors.New("email not verified")

// Kind classifies an error for API consumers.
type Kind string

const (
	KindUnauthenticated       Kind = "Unauthenticated"
	KindMalformedToken        Kind = "MalformedToken"
	KindInvalidOrExpiredToken Kind = "InvalidOrExpiredToken"
	KindNotFound              Kind = "NotFound"
	KindConflict              Kind = "Conflict"
	KindForbidden             Kind = "Forbidden"
	KindValidation            Kind = "ValidationError"
	KindServer                Kind = "ServerError"
)

// AppError carries an HTTP status, a stable user-facing message and the underlying cause.
type AppError struct {
	Code    int    `json:"-"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError, deriving the kind from the status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Kind: kindForStatus(code), Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Kind: KindValidation, Message: message, Err: ErrValidation}
}

// NewValidationError wraps a validation failure with a user-facing message.
func NewValidationError(message string, err error) *AppError {
	if err == nil {
		err = ErrValidation
	} else {
		err = fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return &AppError{Code: http.StatusBadRequest, Kind: KindValidation, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: message, Err: ErrNotFound}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Kind: KindForbidden, Message: message, Err: ErrForbidden}
}

// NewNotVerifiedError rejects a login until the email is confirmed.
func NewNotVerifiedError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Kind: KindForbidden, Message: message, Err: ErrNotVerified}
}

// NewConflictError reports a uniqueness clash. The public API answers these with 400.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Kind: KindConflict, Message: message, Err: ErrDuplicate}
}

func NewUnauthorizedError(kind Kind, message string, err error) *AppError {
	if err == nil {
		err = ErrUnauthorized
	}
	return &AppError{Code: http.StatusUnauthorized, Kind: kind, Message: message, Err: err}
}

func NewInternalServerError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Kind: KindServer, Message: message, Err: err}
}

func kindForStatus(code int) Kind {
	switch code {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized:
		return KindUnauthenticated
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	default:
		return KindServer
	}
}
