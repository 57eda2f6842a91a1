// Package handlers provides HTTP handlers for hero section endpoints
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

// ReorderRequest defines the body shared by every order PUT: the parent
// scope plus the full id list in the desired display order.
type ReorderRequest struct {
	ParentID   string   `json:"parentId" binding:"required"`
	OrderedIDs []string `json:"orderedIds" binding:"required"`
}

// HeroHandlers contains all hero-related HTTP handlers
type HeroHandlers struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewHeroHandlers creates hero handlers with injected dependencies
func NewHeroHandlers(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *HeroHandlers {
	return &HeroHandlers{
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetHeroes returns heroes for a tenant, optionally scoped to one page
func (h *HeroHandlers) GetHeroes(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get heroes request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_heroes_request", tenantCtx.TenantID)
	defer marker.Complete()

	svc := services.NewHeroService(tenantCtx.HeroRepo())

	var heroes []*content.HeroNode
	var err error
	if pageID := c.Query("pageId"); pageID != "" {
		heroes, err = svc.GetByPage(tenantCtx.TenantID, pageID)
	} else {
		heroes, err = svc.GetAll(tenantCtx.TenantID)
	}
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get heroes request completed", "count", len(heroes), "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, heroes)
}

// GetHeroByID returns a specific hero by ID
func (h *HeroHandlers) GetHeroByID(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get hero by ID request", "method", c.Request.Method, "path", c.Request.URL.Path, "heroId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_hero_by_id_request", tenantCtx.TenantID)
	defer marker.Complete()

	hero, err := services.NewHeroService(tenantCtx.HeroRepo()).GetByID(tenantCtx.TenantID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get hero by ID request completed", "heroId", hero.ID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, hero)
}

// CreateHero creates a new hero section
func (h *HeroHandlers) CreateHero(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received create hero request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("create_hero_request", tenantCtx.TenantID)
	defer marker.Complete()

	var draft content.HeroDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	hero, err := services.NewHeroService(tenantCtx.HeroRepo()).Create(tenantCtx.TenantID, &draft)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Create hero request completed", "heroId", hero.ID, "pageId", hero.PageID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusCreated, hero)
}

// UpdateHero replaces the full record for an existing hero
func (h *HeroHandlers) UpdateHero(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received update hero request", "method", c.Request.Method, "path", c.Request.URL.Path, "heroId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("update_hero_request", tenantCtx.TenantID)
	defer marker.Complete()

	var draft content.HeroDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	hero, err := services.NewHeroService(tenantCtx.HeroRepo()).Update(tenantCtx.TenantID, c.Param("id"), &draft)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Update hero request completed", "heroId", hero.ID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, hero)
}

// DeleteHero removes a hero section
func (h *HeroHandlers) DeleteHero(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received delete hero request", "method", c.Request.Method, "path", c.Request.URL.Path, "heroId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("delete_hero_request", tenantCtx.TenantID)
	defer marker.Complete()

	heroID := c.Param("id")
	if err := services.NewHeroService(tenantCtx.HeroRepo()).Delete(tenantCtx.TenantID, heroID); err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Delete hero request completed", "heroId", heroID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondMessage(c, http.StatusOK, "hero deleted")
}

// ReorderHeroes applies a client-submitted order to one page's heroes
func (h *HeroHandlers) ReorderHeroes(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received reorder heroes request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("reorder_heroes_request", tenantCtx.TenantID)
	defer marker.Complete()

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	heroes, err := services.NewHeroService(tenantCtx.HeroRepo()).Reorder(tenantCtx.TenantID, req.ParentID, req.OrderedIDs)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Reorder heroes request completed", "pageId", req.ParentID, "count", len(heroes), "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, heroes)
}
