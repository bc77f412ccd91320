package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/collaborator"
	"labsite-backend/internal/shared/apperror"
	"labsite-backend/internal/shared/response"
	"labsite-backend/internal/shared/utils"
)

// CollaboratorHandler handles HTTP requests for the collaborator domain
type CollaboratorHandler struct {
	service collaborator.Service
}

// NewCollaboratorHandler creates a new collaborator handler instance
func NewCollaboratorHandler(service collaborator.Service) *CollaboratorHandler {
	return &CollaboratorHandler{
		service: service,
	}
}

// ListCollaborators handles GET /collaborators
// ?grouped=true returns the category-grouped view for the partners page.
func (h *CollaboratorHandler) ListCollaborators(c *gin.Context) {
	if c.Query("grouped") == "true" {
		groups, err := h.service.ListGrouped(c.Request.Context())
		if err != nil {
			statusCode, message, code := apperror.GetErrorResponse(err)
			response.ErrorResponse(c, statusCode, code, message)
			return
		}
		response.Success(c, http.StatusOK, groups)
		return
	}

	page, pageSize := utils.ParsePagination(c)

	params := collaborator.ListParams{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.service.ListCollaborators(c.Request.Context(), params)
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

// GetCollaboratorByID handles GET /collaborators/:id
func (h *CollaboratorHandler) GetCollaboratorByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id must be numeric")
		return
	}

	result, err := h.service.GetCollaboratorByID(c.Request.Context(), id)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Categories handles GET /collaborators/categories
func (h *CollaboratorHandler) Categories(c *gin.Context) {
	result, err := h.service.Categories(c.Request.Context())
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CreateCollaborator handles POST /collaborators
func (h *CollaboratorHandler) CreateCollaborator(c *gin.Context) {
	var req collaborator.CollaboratorCreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreateCollaborator(c.Request.Context(), &req)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// UpdateCollaborator handles PUT /collaborators/:id
func (h *CollaboratorHandler) UpdateCollaborator(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id must be numeric")
		return
	}

	var req collaborator.CollaboratorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateCollaborator(c.Request.Context(), id, &req)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DeleteCollaborator handles DELETE /collaborators/:id
func (h *CollaboratorHandler) DeleteCollaborator(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id must be numeric")
		return
	}

	if err := h.service.DeleteCollaborator(c.Request.Context(), id); err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true})
}
