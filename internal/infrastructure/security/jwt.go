// Package security provides JWT token utilities
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Roles carried in admin panel tokens.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GenerateRoleToken creates a signed JWT carrying the caller's role for a tenant
func GenerateRoleToken(tenantID, role, jwtSecret string, ttl time.Duration) (string, error) {
	if role != RoleAdmin && role != RoleEditor {
		return "", errors.New("unknown role")
	}

	claims := jwt.MapClaims{
		"tenantId": tenantID,
		"role":     role,
		"iat":      time.Now().UTC().Unix(),
		"exp":      time.Now().UTC().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// GetRoleFromClaims extracts the role claim from a validated token
func GetRoleFromClaims(claims jwt.MapClaims) string {
	if role, ok := claims["role"].(string); ok {
		return role
	}
	return ""
}

// GetTenantFromClaims extracts the tenant claim from a validated token
func GetTenantFromClaims(claims jwt.MapClaims) string {
	if tenantID, ok := claims["tenantId"].(string); ok {
		return tenantID
	}
	return ""
}
