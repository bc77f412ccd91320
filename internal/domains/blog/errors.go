package blog

import (
	"strconv"

	"labsite-backend/internal/shared/apperror"
)

const entityTag = "BLOG"

// NewBlogNotFound - no post with this id/slug
func NewBlogNotFound(key string) *apperror.AppError {
	return apperror.NewNotFound(entityTag, key)
}

// NewBlogNotFoundByID - no post with this numeric id
func NewBlogNotFoundByID(id int) *apperror.AppError {
	return apperror.NewNotFound(entityTag, strconv.Itoa(id))
}

// NewBlogValidationError - payload failed validation
func NewBlogValidationError(err error) *apperror.AppError {
	return apperror.NewValidation(entityTag, err)
}

// NewBlogLoadError - blogs document missing or malformed
func NewBlogLoadError(err error) *apperror.AppError {
	return apperror.NewLoad(entityTag, err)
}

// NewBlogIOError - document rewrite failed, state unknown
func NewBlogIOError(err error) *apperror.AppError {
	return apperror.NewIO(entityTag, err)
}
