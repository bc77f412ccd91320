package person

import (
	"labsite-backend/internal/shared/apperror"
)

const entityTag = "PERSON"

// NewPersonNotFound - no member with this slug
func NewPersonNotFound(slug string) *apperror.AppError {
	return apperror.NewNotFound(entityTag, slug)
}

// NewPersonValidationError - payload failed validation
func NewPersonValidationError(err error) *apperror.AppError {
	return apperror.NewValidation(entityTag, err)
}

// NewPersonLoadError - people document missing or malformed
func NewPersonLoadError(err error) *apperror.AppError {
	return apperror.NewLoad(entityTag, err)
}

// NewPersonIOError - document rewrite failed, state unknown
func NewPersonIOError(err error) *apperror.AppError {
	return apperror.NewIO(entityTag, err)
}
