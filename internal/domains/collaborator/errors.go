package collaborator

import (
	"errors"
	"strconv"

	"labsite-backend/internal/shared/apperror"
)

const entityTag = "COLLABORATOR"

// NewCollaboratorNotFound - no partner with this id
func NewCollaboratorNotFound(id int) *apperror.AppError {
	return apperror.NewNotFound(entityTag, strconv.Itoa(id))
}

// NewCollaboratorValidationError - payload failed validation
func NewCollaboratorValidationError(err error) *apperror.AppError {
	if err == nil {
		err = errors.New("missing request payload")
	}
	return apperror.NewValidation(entityTag, err)
}

// NewCollaboratorLoadError - collaborators document missing or malformed
func NewCollaboratorLoadError(err error) *apperror.AppError {
	return apperror.NewLoad(entityTag, err)
}

// NewCollaboratorIOError - document rewrite failed, state unknown
func NewCollaboratorIOError(err error) *apperror.AppError {
	return apperror.NewIO(entityTag, err)
}
