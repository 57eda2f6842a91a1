// Package handlers provides HTTP handlers for call-to-action endpoints
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

// CtaHandlers contains all CTA-related HTTP handlers
type CtaHandlers struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewCtaHandlers creates CTA handlers with injected dependencies
func NewCtaHandlers(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *CtaHandlers {
	return &CtaHandlers{
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetCtas returns CTAs, optionally scoped to one header
func (h *CtaHandlers) GetCtas(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get ctas request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_ctas_request", tenantCtx.TenantID)
	defer marker.Complete()

	svc := services.NewCtaService(tenantCtx.CtaRepo())

	var ctas []*content.CtaNode
	var err error
	if headerID := c.Query("headerId"); headerID != "" {
		ctas, err = svc.GetByHeader(tenantCtx.TenantID, headerID)
	} else {
		ctas, err = svc.GetAll(tenantCtx.TenantID)
	}
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get ctas request completed", "count", len(ctas), "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, ctas)
}

// GetCtaByID returns a specific CTA by ID
func (h *CtaHandlers) GetCtaByID(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get cta by ID request", "method", c.Request.Method, "path", c.Request.URL.Path, "ctaId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_cta_by_id_request", tenantCtx.TenantID)
	defer marker.Complete()

	cta, err := services.NewCtaService(tenantCtx.CtaRepo()).GetByID(tenantCtx.TenantID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get cta by ID request completed", "ctaId", cta.ID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, cta)
}

// CreateCta creates a new CTA
func (h *CtaHandlers) CreateCta(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received create cta request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("create_cta_request", tenantCtx.TenantID)
	defer marker.Complete()

	var draft content.CtaDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	cta, err := services.NewCtaService(tenantCtx.CtaRepo()).Create(tenantCtx.TenantID, &draft)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Create cta request completed", "ctaId", cta.ID, "headerId", cta.HeaderID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusCreated, cta)
}

// UpdateCta replaces the full record for an existing CTA
func (h *CtaHandlers) UpdateCta(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received update cta request", "method", c.Request.Method, "path", c.Request.URL.Path, "ctaId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("update_cta_request", tenantCtx.TenantID)
	defer marker.Complete()

	var draft content.CtaDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	cta, err := services.NewCtaService(tenantCtx.CtaRepo()).Update(tenantCtx.TenantID, c.Param("id"), &draft)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Update cta request completed", "ctaId", cta.ID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, cta)
}

// DeleteCta removes a CTA
func (h *CtaHandlers) DeleteCta(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received delete cta request", "method", c.Request.Method, "path", c.Request.URL.Path, "ctaId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("delete_cta_request", tenantCtx.TenantID)
	defer marker.Complete()

	ctaID := c.Param("id")
	if err := services.NewCtaService(tenantCtx.CtaRepo()).Delete(tenantCtx.TenantID, ctaID); err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Delete cta request completed", "ctaId", ctaID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondMessage(c, http.StatusOK, "cta deleted")
}

// ReorderCtas applies a client-submitted order to one header's CTAs
func (h *CtaHandlers) ReorderCtas(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received reorder ctas request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("reorder_ctas_request", tenantCtx.TenantID)
	defer marker.Complete()

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	ctas, err := services.NewCtaService(tenantCtx.CtaRepo()).Reorder(tenantCtx.TenantID, req.ParentID, req.OrderedIDs)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Reorder ctas request completed", "headerId", req.ParentID, "count", len(ctas), "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, ctas)
}
