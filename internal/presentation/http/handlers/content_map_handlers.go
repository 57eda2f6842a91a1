// Package handlers provides HTTP handlers for the tenant content map
package handlers

import (
	"net/http"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/application/services"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/sitepanel-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// ContentMapHandlers contains the HTTP handlers for the content map
type ContentMapHandlers struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewContentMapHandlers creates content map handlers with injected dependencies
func NewContentMapHandlers(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ContentMapHandlers {
	return &ContentMapHandlers{
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetContentMap returns the full inventory of the tenant's content
// nodes as lightweight id/title/linkage items
func (h *ContentMapHandlers) GetContentMap(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get content map request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_content_map_request", tenantCtx.TenantID)
	defer marker.Complete()

	svc := services.NewContentMapService(
		tenantCtx.HeroRepo(),
		tenantCtx.FaqRepo(),
		tenantCtx.CtaRepo(),
		tenantCtx.FormRepo(),
		tenantCtx.MediaSectionRepo(),
	)
	items, err := svc.BuildMap(tenantCtx.TenantID)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get content map request completed", "items", len(items), "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, items)
}
