package project

import (
	"errors"
	"strconv"

	"labsite-backend/internal/shared/apperror"
)

const entityTag = "PROJECT"

// NewProjectNotFound - no project with this id
func NewProjectNotFound(id int) *apperror.AppError {
	return apperror.NewNotFound(entityTag, strconv.Itoa(id))
}

// NewProjectValidationError - payload failed validation
func NewProjectValidationError(err error) *apperror.AppError {
	if err == nil {
		err = errors.New("missing request payload")
	}
	return apperror.NewValidation(entityTag, err)
}

// NewProjectLoadError - projects document missing or malformed
func NewProjectLoadError(err error) *apperror.AppError {
	return apperror.NewLoad(entityTag, err)
}

// NewProjectIOError - document rewrite failed, state unknown
func NewProjectIOError(err error) *apperror.AppError {
	return apperror.NewIO(entityTag, err)
}
