package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/person"
	"labsite-backend/internal/shared/apperror"
	"labsite-backend/internal/shared/response"
	"labsite-backend/internal/shared/utils"
)

// PersonHandler handles HTTP requests for the person domain
type PersonHandler struct {
	service person.Service
}

// NewPersonHandler creates a new person handler instance
func NewPersonHandler(service person.Service) *PersonHandler {
	return &PersonHandler{
		service: service,
	}
}

// ListPeople handles GET /people
// ?grouped=true returns the category-grouped view for the people page.
func (h *PersonHandler) ListPeople(c *gin.Context) {
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

	params := person.ListParams{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.service.ListPeople(c.Request.Context(), params)
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

// GetPersonBySlug handles GET /people/:slug
// ?category= disambiguates when the same slug exists in two categories.
func (h *PersonHandler) GetPersonBySlug(c *gin.Context) {
	result, err := h.service.GetPersonBySlug(c.Request.Context(), c.Param("slug"), c.Query("category"))
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Categories handles GET /people/categories
func (h *PersonHandler) Categories(c *gin.Context) {
	result, err := h.service.Categories(c.Request.Context())
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CreatePerson handles POST /people
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req person.PersonCreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreatePerson(c.Request.Context(), &req)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// UpdatePerson handles PUT /people/:slug
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	var req person.PersonUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdatePerson(c.Request.Context(), c.Param("slug"), c.Query("category"), &req)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DeletePerson handles DELETE /people/:slug
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	if err := h.service.DeletePerson(c.Request.Context(), c.Param("slug"), c.Query("category")); err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true})
}
