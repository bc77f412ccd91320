package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/paper"
	"labsite-backend/internal/shared/apperror"
	"labsite-backend/internal/shared/response"
	"labsite-backend/internal/shared/utils"
)

// PaperHandler handles HTTP requests for the paper domain
type PaperHandler struct {
	service paper.Service
}

// NewPaperHandler creates a new paper handler instance
func NewPaperHandler(service paper.Service) *PaperHandler {
	return &PaperHandler{
		service: service,
	}
}

// keyFromQuery reads the (title, year) natural key. Papers carry no
// synthetic id, so mutations address them via query params.
func keyFromQuery(c *gin.Context) (paper.Key, bool) {
	key := paper.Key{
		Title: c.Query("title"),
		Year:  c.Query("year"),
	}
	if key.Title == "" || key.Year == "" {
		return paper.Key{}, false
	}
	return key, true
}

// ListPapers handles GET /papers
func (h *PaperHandler) ListPapers(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	params := paper.ListParams{
		Query:    c.Query("q"),
		Year:     c.Query("year"),
		Venue:    c.Query("venue"),
		Author:   c.Query("author"),
		SortAsc:  c.Query("sort") == "asc",
		Page:     page,
		PageSize: pageSize,
	}
	if v, err := strconv.Atoi(c.Query("year_from")); err == nil {
		params.YearFrom = v
	}
	if v, err := strconv.Atoi(c.Query("year_to")); err == nil {
		params.YearTo = v
	}

	result, err := h.service.ListPapers(c.Request.Context(), params)
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

// GetPaper handles GET /papers/find?title=&year=
func (h *PaperHandler) GetPaper(c *gin.Context) {
	key, ok := keyFromQuery(c)
	if !ok {
		response.BadRequest(c, "title and year query params are required")
		return
	}

	result, err := h.service.GetPaper(c.Request.Context(), key)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Years handles GET /papers/years
func (h *PaperHandler) Years(c *gin.Context) {
	h.facet(c, h.service.Years)
}

// Venues handles GET /papers/venues
func (h *PaperHandler) Venues(c *gin.Context) {
	h.facet(c, h.service.Venues)
}

// Authors handles GET /papers/authors
func (h *PaperHandler) Authors(c *gin.Context) {
	h.facet(c, h.service.Authors)
}

func (h *PaperHandler) facet(c *gin.Context, fetch func(context.Context) ([]string, error)) {
	result, err := fetch(c.Request.Context())
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CreatePaper handles POST /papers
func (h *PaperHandler) CreatePaper(c *gin.Context) {
	var req paper.PaperCreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreatePaper(c.Request.Context(), &req)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// UpdatePaper handles PUT /papers?title=&year=
func (h *PaperHandler) UpdatePaper(c *gin.Context) {
	key, ok := keyFromQuery(c)
	if !ok {
		response.BadRequest(c, "title and year query params are required")
		return
	}

	var req paper.PaperUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdatePaper(c.Request.Context(), key, &req)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DeletePaper handles DELETE /papers?title=&year=
func (h *PaperHandler) DeletePaper(c *gin.Context) {
	key, ok := keyFromQuery(c)
	if !ok {
		response.BadRequest(c, "title and year query params are required")
		return
	}

	if err := h.service.DeletePaper(c.Request.Context(), key); err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true})
}
