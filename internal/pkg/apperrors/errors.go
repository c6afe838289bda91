package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Student errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentAlreadyExists = errors.New("student ID already registered")
)

// Administrator errors
var (
	ErrAdministratorNotFound = errors.New("administrator not found")
)

// Item errors
var (
	ErrItemNotFound = errors.New("item not found")
)

// Claim errors
var (
	ErrClaimNotFound   = errors.New("claim not found")
	ErrInvalidDecision = errors.New("invalid review decision")
)

// Storage errors
var (
	ErrStorageFailed = errors.New("blob storage operation failed")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying a user-visible message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewStorageError wraps a blob store failure with a user-visible message
func NewStorageError(err error, message string) error {
	return &CustomError{
		Err:     errors.Join(ErrStorageFailed, err),
		Message: message,
	}
}
