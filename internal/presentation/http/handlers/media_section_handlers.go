// Package handlers provides HTTP handlers for media section endpoints
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

// MediaSectionHandlers contains all media section HTTP handlers
type MediaSectionHandlers struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewMediaSectionHandlers creates media section handlers with injected dependencies
func NewMediaSectionHandlers(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *MediaSectionHandlers {
	return &MediaSectionHandlers{
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetMediaSections returns media sections, optionally scoped to one page
func (h *MediaSectionHandlers) GetMediaSections(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get media sections request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_media_sections_request", tenantCtx.TenantID)
	defer marker.Complete()

	svc := services.NewMediaSectionService(tenantCtx.MediaSectionRepo())

	var sections []*content.MediaSectionNode
	var err error
	if pageID := c.Query("pageId"); pageID != "" {
		sections, err = svc.GetByPage(tenantCtx.TenantID, pageID)
	} else {
		sections, err = svc.GetAll(tenantCtx.TenantID)
	}
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get media sections request completed", "count", len(sections), "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, sections)
}

// GetMediaSectionByID returns a specific media section by ID
func (h *MediaSectionHandlers) GetMediaSectionByID(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get media section by ID request", "method", c.Request.Method, "path", c.Request.URL.Path, "sectionId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_media_section_by_id_request", tenantCtx.TenantID)
	defer marker.Complete()

	section, err := services.NewMediaSectionService(tenantCtx.MediaSectionRepo()).GetByID(tenantCtx.TenantID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get media section by ID request completed", "sectionId", section.ID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, section)
}

// CreateMediaSection creates a new media section
func (h *MediaSectionHandlers) CreateMediaSection(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received create media section request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("create_media_section_request", tenantCtx.TenantID)
	defer marker.Complete()

	var draft content.MediaSectionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	section, err := services.NewMediaSectionService(tenantCtx.MediaSectionRepo()).Create(tenantCtx.TenantID, &draft)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Create media section request completed", "sectionId", section.ID, "pageId", section.PageID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusCreated, section)
}

// UpdateMediaSection replaces the full record for an existing media section
func (h *MediaSectionHandlers) UpdateMediaSection(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received update media section request", "method", c.Request.Method, "path", c.Request.URL.Path, "sectionId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("update_media_section_request", tenantCtx.TenantID)
	defer marker.Complete()

	var draft content.MediaSectionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	section, err := services.NewMediaSectionService(tenantCtx.MediaSectionRepo()).Update(tenantCtx.TenantID, c.Param("id"), &draft)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Update media section request completed", "sectionId", section.ID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, section)
}

// DeleteMediaSection removes a media section
func (h *MediaSectionHandlers) DeleteMediaSection(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received delete media section request", "method", c.Request.Method, "path", c.Request.URL.Path, "sectionId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("delete_media_section_request", tenantCtx.TenantID)
	defer marker.Complete()

	sectionID := c.Param("id")
	if err := services.NewMediaSectionService(tenantCtx.MediaSectionRepo()).Delete(tenantCtx.TenantID, sectionID); err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Delete media section request completed", "sectionId", sectionID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondMessage(c, http.StatusOK, "media section deleted")
}

// ReorderMediaSections applies a client-submitted order to one page's sections
func (h *MediaSectionHandlers) ReorderMediaSections(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received reorder media sections request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("reorder_media_sections_request", tenantCtx.TenantID)
	defer marker.Complete()

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	sections, err := services.NewMediaSectionService(tenantCtx.MediaSectionRepo()).Reorder(tenantCtx.TenantID, req.ParentID, req.OrderedIDs)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Reorder media sections request completed", "pageId", req.ParentID, "count", len(sections), "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, sections)
}
