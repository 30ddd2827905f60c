package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingIdentity indicates that the caller identity was absent from the request.
var ErrMissingIdentity = errors.New("caller identity missing")

// AppError is a typed application error carrying a stable message and a
// numeric status code for the outer boundary. Anything that is not an
// AppError collapses to a generic internal error there.
type AppError struct {
	Message string
	Status  int
	Err     error
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

// NewAppError builds an AppError with an arbitrary status code.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Message: message, Status: status, Err: err}
}

// NewValidationError builds an AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Message: message, Status: 400, Err: ErrValidation}
}

// NewMissingIdentityError builds an AppError wrapping ErrMissingIdentity.
func NewMissingIdentityError() *AppError {
	return &AppError{Message: "user identity is required", Status: 401, Err: ErrMissingIdentity}
}

// AsAppError unwraps err into an *AppError when one is present in its chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
