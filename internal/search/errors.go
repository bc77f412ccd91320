package search

import (
	"fmt"

	"labsite-backend/internal/shared/apperror"
)

const entityTag = "SEARCH"

// NewInvalidTypeError - ?type= names no searchable collection
func NewInvalidTypeError(t string) *apperror.AppError {
	return apperror.NewValidation(entityTag, fmt.Errorf("unknown entity type %q", t))
}
