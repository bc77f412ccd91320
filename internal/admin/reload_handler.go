// Package admin holds the cross-domain admin endpoints that do not
// belong to a single collection.
package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/shared/response"
	"labsite-backend/pkg/logger"
)

// Reloader drops a domain's in-memory snapshot so the next read hits
// the on-disk document. Every domain service implements it.
type Reloader interface {
	Reload(ctx context.Context) error
}

// NamedReloader pairs a collection name with its reloader for the
// reload report.
type NamedReloader struct {
	Name     string
	Reloader Reloader
}

// ReloadHandler handles POST /admin/reload
type ReloadHandler struct {
	targets []NamedReloader
}

// NewReloadHandler creates a reload handler over the given collections.
func NewReloadHandler(targets []NamedReloader) *ReloadHandler {
	return &ReloadHandler{
		targets: targets,
	}
}

// Reload drops every collection snapshot. Used after editing the JSON
// documents out of band (git pull, scp) so the API serves fresh content
// without a restart.
func (h *ReloadHandler) Reload(c *gin.Context) {
	reloaded := make([]string, 0, len(h.targets))
	for _, t := range h.targets {
		if err := t.Reloader.Reload(c.Request.Context()); err != nil {
			logger.Error("snapshot reload failed", err)
			response.InternalServerError(c, "Failed to reload collection "+t.Name)
			return
		}
		reloaded = append(reloaded, t.Name)
	}

	logger.Info("content snapshots reloaded", map[string]interface{}{
		"collections": reloaded,
	})
	response.Success(c, http.StatusOK, gin.H{"reloaded": reloaded})
}
