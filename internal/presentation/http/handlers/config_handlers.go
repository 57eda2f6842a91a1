// Package handlers provides HTTP handlers for tenant configuration
package handlers

import (
	"net/http"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/types"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/tenant"
	"github.com/AtRiskMedia/sitepanel-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// ConfigHandlers contains all configuration-related HTTP handlers
type ConfigHandlers struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewConfigHandlers creates config handlers with injected dependencies
func NewConfigHandlers(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ConfigHandlers {
	return &ConfigHandlers{
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetBrandConfig returns tenant brand configuration
func (h *ConfigHandlers) GetBrandConfig(c *gin.Context) {
	start := time.Now()
	h.logger.System().Debug("Received get brand config request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_brand_config_request", tenantCtx.TenantID)
	defer marker.Complete()

	if cached, ok := tenantCtx.CacheManager.GetBrandConfig(tenantCtx.TenantID); ok {
		marker.AddCacheHit()
		marker.SetSuccess(true)
		respondData(c, http.StatusOK, cached)
		return
	}
	marker.AddCacheMiss()

	brand := tenantCtx.Config.BrandConfig
	if brand == nil {
		loaded, err := tenant.LoadBrandConfig(tenantCtx.TenantID)
		if err != nil {
			h.logger.System().Error("Brand config load failed", "error", err.Error(), "tenantId", tenantCtx.TenantID)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "brand configuration not available"})
			return
		}
		brand = loaded
	}
	tenantCtx.CacheManager.SetBrandConfig(tenantCtx.TenantID, brand)

	h.logger.System().Info("Get brand config request completed", "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, brand)
}

// UpdateBrandConfig replaces the tenant brand configuration and
// persists it to the tenant's brand.json
func (h *ConfigHandlers) UpdateBrandConfig(c *gin.Context) {
	start := time.Now()
	h.logger.System().Debug("Received update brand config request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("update_brand_config_request", tenantCtx.TenantID)
	defer marker.Complete()

	var brand types.BrandConfig
	if err := c.ShouldBindJSON(&brand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	// Bump the styles version so the frontend regenerates its tokens.
	brand.StylesVer = time.Now().Unix()

	if err := tenant.SaveBrandConfig(tenantCtx.TenantID, &brand); err != nil {
		h.logger.System().Error("Brand config save failed", "error", err.Error(), "tenantId", tenantCtx.TenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to save brand configuration"})
		return
	}

	tenantCtx.Config.BrandConfig = &brand
	tenantCtx.CacheManager.SetBrandConfig(tenantCtx.TenantID, &brand)

	h.logger.System().Info("Update brand config request completed", "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, &brand)
}
