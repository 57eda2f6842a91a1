// Package services provides application-level orchestration services
package services

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"slices"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/security"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/tenant"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles panel authentication workflows and JWT operations
type AuthService struct {
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewAuthService creates a new authentication service
func NewAuthService(logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AuthService {
	return &AuthService{
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// AuthResult holds authentication result data
type AuthResult struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Authenticate validates admin or editor credentials and generates a JWT
func (a *AuthService) Authenticate(password string, tenantCtx *tenant.Context) *AuthResult {
	marker := a.perfTracker.StartOperation("auth:login", tenantCtx.TenantID)
	defer marker.Complete()

	var role string

	if tenantCtx.Config.AdminPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(tenantCtx.Config.AdminPassword), []byte(password)); err == nil {
			role = security.RoleAdmin
		}
	}

	if role == "" && tenantCtx.Config.EditorPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(tenantCtx.Config.EditorPassword), []byte(password)); err == nil {
			role = security.RoleEditor
		}
	}

	// Fallback for plaintext passwords during transition/testing
	if role == "" {
		if tenantCtx.Config.AdminPassword != "" && password == tenantCtx.Config.AdminPassword {
			role = security.RoleAdmin
		} else if tenantCtx.Config.EditorPassword != "" && password == tenantCtx.Config.EditorPassword {
			role = security.RoleEditor
		}
	}

	if role == "" {
		a.logger.LogAuthOperation("login", tenantCtx.TenantID, "", false, nil)
		marker.SetSuccess(false)
		return &AuthResult{
			Success: false,
			Error:   "Invalid credentials",
		}
	}

	token, err := security.GenerateRoleToken(tenantCtx.Config.TenantID, role, tenantCtx.Config.JWTSecret, 24*time.Hour)
	if err != nil {
		a.logger.Auth().Error("Token generation failed", "error", err.Error(), "tenantId", tenantCtx.TenantID)
		marker.SetError(err)
		return &AuthResult{Success: false, Error: "Token generation failed"}
	}

	a.logger.LogAuthOperation("login", tenantCtx.TenantID, role, true, nil)
	return &AuthResult{Token: token, Role: role, Success: true}
}

// ValidateAdminToken checks if a token belongs to an admin user
func (a *AuthService) ValidateAdminToken(tokenString string, tenantCtx *tenant.Context) bool {
	return a.ValidateTokenWithRoles(tokenString, tenantCtx, []string{security.RoleAdmin})
}

// ValidateAdminOrEditorToken checks if a token belongs to an admin or editor user
func (a *AuthService) ValidateAdminOrEditorToken(tokenString string, tenantCtx *tenant.Context) bool {
	return a.ValidateTokenWithRoles(tokenString, tenantCtx, []string{security.RoleAdmin, security.RoleEditor})
}

// ValidateTokenWithRoles validates a token and checks if the role is in the allowed list
func (a *AuthService) ValidateTokenWithRoles(tokenString string, tenantCtx *tenant.Context, allowedRoles []string) bool {
	if tokenString == "" {
		return false
	}

	claims, err := security.ValidateJWT(tokenString, tenantCtx.Config.JWTSecret)
	if err != nil {
		return false
	}

	tokenTenantID := security.GetTenantFromClaims(claims)
	if tokenTenantID != tenantCtx.TenantID {
		return false
	}

	tokenRole := security.GetRoleFromClaims(claims)
	if tokenRole == "" {
		return false
	}

	return slices.Contains(allowedRoles, tokenRole)
}

// GenerateSecureToken generates a cryptographically secure random token
func (a *AuthService) GenerateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// TokenInfo holds information about a decoded token
type TokenInfo struct {
	Valid     bool           `json:"valid"`
	Claims    map[string]any `json:"claims,omitempty"`
	Role      string         `json:"role,omitempty"`
	TenantID  string         `json:"tenantId,omitempty"`
	ExpiresAt time.Time      `json:"expiresAt,omitempty"`
}

// GetTokenInfo extracts information from a JWT token without validating permissions
func (a *AuthService) GetTokenInfo(tokenString string, tenantCtx *tenant.Context) *TokenInfo {
	if tokenString == "" {
		return &TokenInfo{Valid: false}
	}

	claims, err := security.ValidateJWT(tokenString, tenantCtx.Config.JWTSecret)
	if err != nil {
		return &TokenInfo{Valid: false}
	}

	info := &TokenInfo{
		Valid:  true,
		Claims: claims,
	}

	info.Role = security.GetRoleFromClaims(claims)
	info.TenantID = security.GetTenantFromClaims(claims)
	if exp, ok := claims["exp"].(float64); ok {
		info.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return info
}
