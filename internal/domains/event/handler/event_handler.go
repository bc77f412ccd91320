package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/event"
	"labsite-backend/internal/shared/apperror"
	"labsite-backend/internal/shared/response"
	"labsite-backend/internal/shared/utils"
)

// EventHandler handles HTTP requests for the event domain
type EventHandler struct {
	service event.Service
}

// NewEventHandler creates a new event handler instance
func NewEventHandler(service event.Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// ListEvents handles GET /events
// ?when=past|upcoming picks one timeline bucket; omitted returns both.
func (h *EventHandler) ListEvents(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	when := event.When(c.Query("when"))
	switch when {
	case event.WhenAll, event.WhenPast, event.WhenUpcoming:
	default:
		response.BadRequest(c, "when must be 'past' or 'upcoming'")
		return
	}

	params := event.ListParams{
		When:     when,
		Query:    c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.service.ListEvents(c.Request.Context(), params)
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

// GetEventBySlug handles GET /events/:slug
func (h *EventHandler) GetEventBySlug(c *gin.Context) {
	result, err := h.service.GetEventBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req event.EventCreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// UpdateEvent handles PUT /events/:slug
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req event.EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateEvent(c.Request.Context(), c.Param("slug"), &req)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DeleteEvent handles DELETE /events/:slug
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.service.DeleteEvent(c.Request.Context(), c.Param("slug")); err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

// UploadImage handles POST /events/:slug/images (multipart form, field "image")
func (h *EventHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "failed to read uploaded file")
		return
	}

	result, err := h.service.UploadImage(c.Request.Context(), c.Param("slug"), data)
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusCreated, result)
}
