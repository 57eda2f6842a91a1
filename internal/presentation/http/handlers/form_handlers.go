// Package handlers provides HTTP handlers for form endpoints
package handlers

import (
	"net/http"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/application/services"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/email"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/sitepanel-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// SubmissionRequest carries a public form submission keyed by field name.
type SubmissionRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

// FormHandlers contains all form-related HTTP handlers
type FormHandlers struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewFormHandlers creates form handlers with injected dependencies
func NewFormHandlers(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *FormHandlers {
	return &FormHandlers{
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetForms returns all forms for a tenant
func (h *FormHandlers) GetForms(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get forms request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_forms_request", tenantCtx.TenantID)
	defer marker.Complete()

	forms, err := services.NewFormService(tenantCtx.FormRepo()).GetAll(tenantCtx.TenantID)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get forms request completed", "count", len(forms), "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, forms)
}

// GetFormByID returns a specific form by ID
func (h *FormHandlers) GetFormByID(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get form by ID request", "method", c.Request.Method, "path", c.Request.URL.Path, "formId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_form_by_id_request", tenantCtx.TenantID)
	defer marker.Complete()

	form, err := services.NewFormService(tenantCtx.FormRepo()).GetByID(tenantCtx.TenantID, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get form by ID request completed", "formId", form.ID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, form)
}

// GetFormBySlug returns a specific form by slug
func (h *FormHandlers) GetFormBySlug(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get form by slug request", "method", c.Request.Method, "path", c.Request.URL.Path, "slug", c.Param("slug"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("get_form_by_slug_request", tenantCtx.TenantID)
	defer marker.Complete()

	form, err := services.NewFormService(tenantCtx.FormRepo()).GetBySlug(tenantCtx.TenantID, c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Get form by slug request completed", "formId", form.ID, "slug", form.Slug, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, form)
}

// CreateForm creates a new form with its embedded field definitions
func (h *FormHandlers) CreateForm(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received create form request", "method", c.Request.Method, "path", c.Request.URL.Path)
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("create_form_request", tenantCtx.TenantID)
	defer marker.Complete()

	var draft content.FormDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	form, err := services.NewFormService(tenantCtx.FormRepo()).Create(tenantCtx.TenantID, &draft)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Create form request completed", "formId", form.ID, "slug", form.Slug, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusCreated, form)
}

// UpdateForm replaces the full record including the field list
func (h *FormHandlers) UpdateForm(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received update form request", "method", c.Request.Method, "path", c.Request.URL.Path, "formId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("update_form_request", tenantCtx.TenantID)
	defer marker.Complete()

	var draft content.FormDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	form, err := services.NewFormService(tenantCtx.FormRepo()).Update(tenantCtx.TenantID, c.Param("id"), &draft)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Update form request completed", "formId", form.ID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, form)
}

// DeleteForm removes a form
func (h *FormHandlers) DeleteForm(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received delete form request", "method", c.Request.Method, "path", c.Request.URL.Path, "formId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("delete_form_request", tenantCtx.TenantID)
	defer marker.Complete()

	formID := c.Param("id")
	if err := services.NewFormService(tenantCtx.FormRepo()).Delete(tenantCtx.TenantID, formID); err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Delete form request completed", "formId", formID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondMessage(c, http.StatusOK, "form deleted")
}

// SubmitForm accepts a public submission, validates it against the
// form's field definitions and relays it by email.
func (h *FormHandlers) SubmitForm(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received form submission", "method", c.Request.Method, "path", c.Request.URL.Path, "formId", c.Param("id"))
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	marker := h.perfTracker.StartOperation("submit_form_request", tenantCtx.TenantID)
	defer marker.Complete()

	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	// Tenants without a Resend key accept submissions without notification.
	emailSvc, err := email.NewService(tenantCtx.Config.ResendAPIKey)
	if err != nil {
		h.logger.Email().Warn("No email service for tenant, submission will not be relayed", "tenantId", tenantCtx.TenantID)
		emailSvc = nil
	}

	svc := services.NewFormSubmissionService(tenantCtx.FormRepo(), emailSvc, h.logger)
	submission, err := svc.Submit(tenantCtx.TenantID, c.Param("id"), req.Values)
	if err != nil {
		respondError(c, h.logger, tenantCtx.TenantID, err)
		return
	}

	h.logger.Content().Info("Form submission completed", "formId", submission.FormID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusCreated, submission)
}
