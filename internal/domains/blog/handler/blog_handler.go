package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/blog"
	"labsite-backend/internal/shared/apperror"
	"labsite-backend/internal/shared/response"
	"labsite-backend/internal/shared/utils"
)

// BlogHandler handles HTTP requests for the blog domain
type BlogHandler struct {
	service blog.Service
}

// NewBlogHandler creates a new blog handler instance
func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{
		service: service,
	}
}

// ListBlogs handles GET /blogs
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	params := blog.ListParams{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Author:   c.Query("author"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.service.ListBlogs(c.Request.Context(), params)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Items, &response.Meta{
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// GetBlogBySlug handles GET /blogs/:slug
func (h *BlogHandler) GetBlogBySlug(c *gin.Context) {
	slug := c.Param("slug")

	result, err := h.service.GetBlogBySlug(c.Request.Context(), slug)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Categories handles GET /blogs/categories
func (h *BlogHandler) Categories(c *gin.Context) {
	result, err := h.service.Categories(c.Request.Context())
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CreateBlog handles POST /blogs
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req blog.BlogCreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreateBlog(c.Request.Context(), &req)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// UpdateBlog handles PUT /blogs/:id
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid blog id")
		return
	}

	var req blog.BlogUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateBlog(c.Request.Context(), id, &req)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DeleteBlog handles DELETE /blogs/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid blog id")
		return
	}

	if err := h.service.DeleteBlog(c.Request.Context(), id); err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true})
}
