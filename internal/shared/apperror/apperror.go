package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the base error for every content domain.
// Code is a stable machine-readable identifier (e.g. "BLOG_NOT_FOUND").
type AppError struct {
	Code    string // Unique error code
	Message string // Human-readable message
	Err     error  // Underlying error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *AppError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR KINDS
// ============================================
// Every domain error falls into one of four kinds. The kind is the
// suffix of the code: <ENTITY>_NOT_FOUND, <ENTITY>_VALIDATION_FAILED,
// <ENTITY>_LOAD_FAILED, <ENTITY>_WRITE_FAILED.

const (
	suffixNotFound         = "_NOT_FOUND"
	suffixValidationFailed = "_VALIDATION_FAILED"
	suffixLoadFailed       = "_LOAD_FAILED"
	suffixWriteFailed      = "_WRITE_FAILED"
)

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

// NewNotFound creates a "record not found" error for one entity kind.
// entity is an upper-snake tag like "BLOG"; key identifies the record.
func NewNotFound(entity, key string) *AppError {
	return &AppError{
		Code:    entity + suffixNotFound,
		Message: fmt.Sprintf("%s not found: %s", entity, key),
	}
}

// NewValidation creates a validation error. The underlying error carries
// the per-field detail produced by the request DTO's Validate().
func NewValidation(entity string, err error) *AppError {
	return &AppError{
		Code:    entity + suffixValidationFailed,
		Message: fmt.Sprintf("invalid %s payload", entity),
		Err:     err,
	}
}

// NewLoad creates a snapshot-load error (document missing or malformed).
func NewLoad(entity string, err error) *AppError {
	return &AppError{
		Code:    entity + suffixLoadFailed,
		Message: fmt.Sprintf("failed to load %s collection", entity),
		Err:     err,
	}
}

// NewIO creates a persistence error. After this error the on-disk state
// is unknown; callers must reload the snapshot before the next read.
func NewIO(entity string, err error) *AppError {
	return &AppError{
		Code:    entity + suffixWriteFailed,
		Message: fmt.Sprintf("failed to persist %s collection", entity),
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func hasSuffix(err error, suffix string) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return len(appErr.Code) >= len(suffix) &&
		appErr.Code[len(appErr.Code)-len(suffix):] == suffix
}

// IsNotFound reports whether err is a "record not found" error.
func IsNotFound(err error) bool {
	return hasSuffix(err, suffixNotFound)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return hasSuffix(err, suffixValidationFailed)
}

// IsLoad reports whether err is a snapshot-load error.
func IsLoad(err error) bool {
	return hasSuffix(err, suffixLoadFailed)
}

// IsIO reports whether err is a persistence error.
func IsIO(err error) bool {
	return hasSuffix(err, suffixWriteFailed)
}

// IsDomainError reports whether err is an AppError.
func IsDomainError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetErrorCode extracts the error code from err.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// GetErrorMessage extracts the error message from err.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil && IsValidation(err) {
			return fmt.Sprintf("%s: %v", appErr.Message, appErr.Err)
		}
		return appErr.Message
	}
	return err.Error()
}

// GetErrorResponse maps a domain error onto an HTTP response triple.
func GetErrorResponse(err error) (statusCode int, message string, errorCode string) {
	if err == nil {
		return http.StatusOK, "Success", ""
	}

	switch {
	case IsNotFound(err):
		return http.StatusNotFound, GetErrorMessage(err), GetErrorCode(err)
	case IsValidation(err):
		return http.StatusBadRequest, GetErrorMessage(err), GetErrorCode(err)
	case IsLoad(err):
		return http.StatusServiceUnavailable, GetErrorMessage(err), GetErrorCode(err)
	case IsIO(err):
		return http.StatusInternalServerError, GetErrorMessage(err), GetErrorCode(err)
	case IsDomainError(err):
		return http.StatusInternalServerError, GetErrorMessage(err), GetErrorCode(err)
	default:
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}
}
