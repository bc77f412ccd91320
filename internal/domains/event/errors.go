package event

import (
	"errors"

	"labsite-backend/internal/shared/apperror"
)

const entityTag = "EVENT"

// NewEventNotFound - no event with this slug
func NewEventNotFound(slug string) *apperror.AppError {
	return apperror.NewNotFound(entityTag, slug)
}

// NewEventValidationError - payload failed validation
func NewEventValidationError(err error) *apperror.AppError {
	return apperror.NewValidation(entityTag, err)
}

// NewEventImageError - upload rejected (bad format, oversize, no storage)
func NewEventImageError(message string, err error) *apperror.AppError {
	if err == nil {
		err = errors.New(message)
	}
	return apperror.NewValidation(entityTag, err)
}

// NewEventLoadError - events document missing or malformed
func NewEventLoadError(err error) *apperror.AppError {
	return apperror.NewLoad(entityTag, err)
}

// NewEventIOError - document rewrite failed, state unknown
func NewEventIOError(err error) *apperror.AppError {
	return apperror.NewIO(entityTag, err)
}
