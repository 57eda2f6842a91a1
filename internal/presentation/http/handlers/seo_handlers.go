// Package handlers provides HTTP handlers for the tenant SEO settings
package handlers

import (
	"net/http"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/application/services"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/sitepanel-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// SeoHandlers contains the HTTP handlers for the per-tenant SEO record
type SeoHandlers struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewSeoHandlers creates SEO handlers with injected dependencies
func NewSeoHandlers(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *SeoHandlers {
	return &SeoHandlers{
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetSeo returns the tenant's SEO settings, primed with defaults when
// nothing has been saved yet
func (h *SeoHandlers) GetSeo(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get seo request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_seo_request", tenantCtx.TenantID)
	defer marker.Complete()

	seo, err := services.NewSeoService(tenantCtx.SeoRepo()).Get(tenantCtx.TenantID)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get seo request completed", "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, seo)
}

// PutSeo replaces the tenant's SEO settings as a whole
func (h *SeoHandlers) PutSeo(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received put seo request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("put_seo_request", tenantCtx.TenantID)
	defer marker.Complete()

	var draft content.SeoDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	seo, err := services.NewSeoService(tenantCtx.SeoRepo()).Put(tenantCtx.TenantID, &draft)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Put seo request completed", "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, seo)
}
