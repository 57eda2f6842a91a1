// Package handlers provides HTTP handlers for FAQ endpoints
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

// FaqHandlers contains all FAQ-related HTTP handlers
type FaqHandlers struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewFaqHandlers creates FAQ handlers with injected dependencies
func NewFaqHandlers(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *FaqHandlers {
	return &FaqHandlers{
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetFaqs returns FAQ entries, optionally scoped to one category
func (h *FaqHandlers) GetFaqs(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get faqs request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_faqs_request", tenantCtx.TenantID)
	defer marker.Complete()

	svc := services.NewFaqService(tenantCtx.FaqRepo())

	var faqs []*content.FaqNode
	var err error
	if categoryID := c.Query("categoryId"); categoryID != "" {
		faqs, err = svc.GetByCategory(tenantCtx.TenantID, categoryID)
	} else {
		faqs, err = svc.GetAll(tenantCtx.TenantID)
	}
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get faqs request completed", "count", len(faqs), "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, faqs)
}

// GetFaqByID returns a specific FAQ entry by ID
func (h *FaqHandlers) GetFaqByID(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get faq by ID request", "method", c.Request.Method, "path", c.Request.URL.Path, "faqId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_faq_by_id_request", tenantCtx.TenantID)
	defer marker.Complete()

	faq, err := services.NewFaqService(tenantCtx.FaqRepo()).GetByID(tenantCtx.TenantID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get faq by ID request completed", "faqId", faq.ID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, faq)
}

// CreateFaq creates a new FAQ entry
func (h *FaqHandlers) CreateFaq(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received create faq request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("create_faq_request", tenantCtx.TenantID)
	defer marker.Complete()

	var draft content.FaqDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	faq, err := services.NewFaqService(tenantCtx.FaqRepo()).Create(tenantCtx.TenantID, &draft)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Create faq request completed", "faqId", faq.ID, "categoryId", faq.CategoryID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusCreated, faq)
}

// UpdateFaq replaces the full record for an existing FAQ entry
func (h *FaqHandlers) UpdateFaq(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received update faq request", "method", c.Request.Method, "path", c.Request.URL.Path, "faqId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("update_faq_request", tenantCtx.TenantID)
	defer marker.Complete()

	var draft content.FaqDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	faq, err := services.NewFaqService(tenantCtx.FaqRepo()).Update(tenantCtx.TenantID, c.Param("id"), &draft)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Update faq request completed", "faqId", faq.ID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, faq)
}

// DeleteFaq removes a FAQ entry
func (h *FaqHandlers) DeleteFaq(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received delete faq request", "method", c.Request.Method, "path", c.Request.URL.Path, "faqId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("delete_faq_request", tenantCtx.TenantID)
	defer marker.Complete()

	faqID := c.Param("id")
	if err := services.NewFaqService(tenantCtx.FaqRepo()).Delete(tenantCtx.TenantID, faqID); err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Delete faq request completed", "faqId", faqID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondMessage(c, http.StatusOK, "faq deleted")
}

// ReorderFaqs applies a client-submitted order to one category's entries
func (h *FaqHandlers) ReorderFaqs(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received reorder faqs request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("reorder_faqs_request", tenantCtx.TenantID)
	defer marker.Complete()

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	faqs, err := services.NewFaqService(tenantCtx.FaqRepo()).Reorder(tenantCtx.TenantID, req.ParentID, req.OrderedIDs)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Reorder faqs request completed", "categoryId", req.ParentID, "count", len(faqs), "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, faqs)
}
