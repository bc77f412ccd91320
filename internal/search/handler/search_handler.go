package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/search"
	"labsite-backend/internal/shared/apperror"
	"labsite-backend/internal/shared/response"
)

// SearchHandler handles the site-wide search endpoint
type SearchHandler struct {
	service search.Service
}

// NewSearchHandler creates a new search handler instance
func NewSearchHandler(service search.Service) *SearchHandler {
	return &SearchHandler{
		service: service,
	}
}

// Search handles GET /search?q=&type=
// An empty q returns an empty hit set, not the whole corpus.
func (h *SearchHandler) Search(c *gin.Context) {
	result, err := h.service.Search(c.Request.Context(),
		c.Query("q"), search.EntityType(c.Query("type")))
	if err != nil {
		statusCode, message, code := apperror.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, result)
}
