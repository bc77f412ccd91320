package paper

import (
	"fmt"

	"labsite-backend/internal/shared/apperror"
)

const entityTag = "PAPER"

// NewPaperNotFound - no publication with this (title, year) key
func NewPaperNotFound(key Key) *apperror.AppError {
	return apperror.NewNotFound(entityTag, fmt.Sprintf("%s (%s)", key.Title, key.Year))
}

// NewPaperValidationError - payload failed validation
func NewPaperValidationError(err error) *apperror.AppError {
	return apperror.NewValidation(entityTag, err)
}

// NewPaperLoadError - papers document missing or malformed
func NewPaperLoadError(err error) *apperror.AppError {
	return apperror.NewLoad(entityTag, err)
}

// NewPaperIOError - document rewrite failed, state unknown
func NewPaperIOError(err error) *apperror.AppError {
	return apperror.NewIO(entityTag, err)
}
