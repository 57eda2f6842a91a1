// Package handlers provides HTTP handlers for panel authentication
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/application/services"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/sitepanel-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// LoginRequest represents the structure for login requests
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AuthHandlers contains all authentication-related HTTP handlers
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewAuthHandlers creates auth handlers with injected dependencies
func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// PostLogin handles POST /api/v1/auth/login - admin/editor authentication
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	start := time.Now()
	marker := h.perfTracker.StartOperation("post_login_request", tenantCtx.TenantID)
	defer marker.Complete()
	h.logger.Auth().Debug("Received login request", "method", c.Request.Method, "path", c.Request.URL.Path, "tenantId", tenantCtx.TenantID)

	var loginReq LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		h.logger.Auth().Error("Login request JSON binding failed", "tenantId", tenantCtx.TenantID, "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request format"})
		return
	}

	result := h.authService.Authenticate(loginReq.Password, tenantCtx)
	if !result.Success {
		h.logger.Auth().Warn("Login attempt failed", "tenantId", tenantCtx.TenantID, "duration", time.Since(start))
		marker.SetSuccess(false)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
		return
	}

	// Set role-specific HTTP-only cookie
	cookieName := "admin_auth"
	if result.Role == "editor" {
		cookieName = "editor_auth"
	}

	c.SetCookie(
		cookieName,
		result.Token,
		86400, // 24 hours
		"/",
		"", // current domain
		false,
		true, // httpOnly
	)

	h.logger.Auth().Info("Login successful", "tenantId", tenantCtx.TenantID, "role", result.Role, "duration", time.Since(start))
	marker.SetSuccess(true)
	h.logger.Perf().Info("Performance for PostLogin request", "duration", marker.Duration, "tenantId", tenantCtx.TenantID, "success", true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"role":  result.Role,
			"token": result.Token,
		},
		"message": "login successful",
	})
}

// PostLogout handles POST /api/v1/auth/logout - clears authentication cookies
func (h *AuthHandlers) PostLogout(c *gin.Context) {
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	start := time.Now()
	marker := h.perfTracker.StartOperation("post_logout_request", tenantCtx.TenantID)
	defer marker.Complete()

	c.SetCookie("admin_auth", "", -1, "/", "", false, true)
	c.SetCookie("editor_auth", "", -1, "/", "", false, true)

	h.logger.Auth().Info("Logout completed", "tenantId", tenantCtx.TenantID, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondMessage(c, http.StatusOK, "logout successful")
}

// GetAuthStatus handles GET /api/v1/auth/status - checks current authentication status
func (h *AuthHandlers) GetAuthStatus(c *gin.Context) {
	tenantCtx, exists := middleware.GetTenantContext(c)
	if !exists {
		respondNoTenant(c)
		return
	}

	start := time.Now()
	marker := h.perfTracker.StartOperation("get_auth_status_request", tenantCtx.TenantID)
	defer marker.Complete()

	var tokenInfo *services.TokenInfo
	var authenticated bool
	var authMethod string

	if token := bearerToken(c); token != "" {
		tokenInfo = h.authService.GetTokenInfo(token, tenantCtx)
		if tokenInfo.Valid {
			authenticated = true
			authMethod = "bearer"
		}
	}

	if !authenticated {
		for _, cookieName := range []string{"admin_auth", "editor_auth"} {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie == "" {
				continue
			}
			tokenInfo = h.authService.GetTokenInfo(cookie, tenantCtx)
			if tokenInfo.Valid {
				authenticated = true
				authMethod = "cookie"
				break
			}
		}
	}

	data := gin.H{
		"authenticated": authenticated,
		"method":        authMethod,
	}
	if authenticated && tokenInfo != nil {
		data["role"] = tokenInfo.Role
		data["tenantId"] = tokenInfo.TenantID
		data["expiresAt"] = tokenInfo.ExpiresAt
	}

	h.logger.Auth().Info("Auth status check completed", "tenantId", tenantCtx.TenantID, "authenticated", authenticated, "method", authMethod, "duration", time.Since(start))
	marker.SetSuccess(true)
	respondData(c, http.StatusOK, data)
}

// AuthMiddleware requires a valid admin or editor token
func (h *AuthHandlers) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantCtx, exists := middleware.GetTenantContext(c)
		if !exists {
			respondNoTenant(c)
			c.Abort()
			return
		}

		authenticated := false

		if token := bearerToken(c); token != "" {
			authenticated = h.authService.ValidateAdminOrEditorToken(token, tenantCtx)
		} else {
			for _, cookieName := range []string{"admin_auth", "editor_auth"} {
				if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
					if h.authService.ValidateAdminOrEditorToken(cookie, tenantCtx) {
						authenticated = true
						break
					}
				}
			}
		}

		if !authenticated {
			h.logger.Auth().Warn("Unauthorized access attempt", "tenantId", tenantCtx.TenantID, "path", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authentication required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnlyMiddleware requires a valid admin token
func (h *AuthHandlers) AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantCtx, exists := middleware.GetTenantContext(c)
		if !exists {
			respondNoTenant(c)
			c.Abort()
			return
		}

		authenticated := false

		if token := bearerToken(c); token != "" {
			authenticated = h.authService.ValidateAdminToken(token, tenantCtx)
		} else if cookie, err := c.Cookie("admin_auth"); err == nil && cookie != "" {
			authenticated = h.authService.ValidateAdminToken(cookie, tenantCtx)
		}

		if !authenticated {
			h.logger.Auth().Warn("Unauthorized admin access attempt", "tenantId", tenantCtx.TenantID, "path", c.Request.URL.Path)
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header, if any.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
