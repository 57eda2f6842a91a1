// Package tenant handles loading and providing tenant-specific configurations.
package tenant

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/types"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
)

// Config represents the structure of a single tenant's configuration
type Config struct {
	TenantID       string             `json:"tenantId"`
	Domains        []string           `json:"domains"`
	Status         string             `json:"status"`
	DatabaseType   string             `json:"databaseType"`
	TursoDatabase  string             `json:"TURSO_DATABASE_URL"`
	TursoToken     string             `json:"TURSO_AUTH_TOKEN"`
	TursoEnabled   bool               `json:"TURSO_ENABLED"`
	JWTSecret      string             `json:"JWT_SECRET"`
	ResendAPIKey   string             `json:"RESEND_API_KEY,omitempty"`
	NotifyEmail    string             `json:"NOTIFY_EMAIL,omitempty"`
	AdminPassword  string             `json:"ADMIN_PASSWORD,omitempty"`
	EditorPassword string             `json:"EDITOR_PASSWORD,omitempty"`
	SQLitePath     string             `json:"-"`
	BrandConfig    *types.BrandConfig `json:"-"`
}

// LoadTenantConfig loads configuration for a specific tenant from its env.json file.
func LoadTenantConfig(tenantID string, logger *logging.ChanneledLogger) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not find user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, "sitepanel-go-server", "config", tenantID, "env.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("tenant config file not found at %s", configPath)
	}

	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("could not read tenant config file: %w", err)
	}

	var tenantConfig Config
	if err := json.Unmarshal(configFile, &tenantConfig); err != nil {
		return nil, fmt.Errorf("could not parse tenant config json: %w", err)
	}

	// Set computed fields
	tenantConfig.TenantID = tenantID
	tenantConfig.SQLitePath = filepath.Join(homeDir, "sitepanel-go-server", "db", tenantID, "sitepanel.db")

	// Load brand configuration
	brandConfig, err := LoadBrandConfig(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load brand config: %w", err)
	}
	tenantConfig.BrandConfig = brandConfig

	if logger != nil {
		logger.Tenant().Debug("Tenant config loaded", "tenantId", tenantID, "tursoEnabled", tenantConfig.TursoEnabled)
	}

	return &tenantConfig, nil
}

// LoadBrandConfig loads brand configuration for a specific tenant
func LoadBrandConfig(tenantID string) (*types.BrandConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not find user home directory: %w", err)
	}

	brandPath := filepath.Join(homeDir, "sitepanel-go-server", "config", tenantID, "brand.json")

	// Return defaults if file doesn't exist
	if _, err := os.Stat(brandPath); os.IsNotExist(err) {
		return &types.BrandConfig{
			SiteInit:  false,
			Theme:     "Default",
			StylesVer: 1,
		}, nil
	}

	data, err := os.ReadFile(brandPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read brand config: %w", err)
	}

	var brand types.BrandConfig
	if err := json.Unmarshal(data, &brand); err != nil {
		return nil, fmt.Errorf("failed to parse brand config: %w", err)
	}

	return &brand, nil
}

// SaveBrandConfig persists brand configuration for a specific tenant
func SaveBrandConfig(tenantID string, brand *types.BrandConfig) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not find user home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, "sitepanel-go-server", "config", tenantID)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(brand, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal brand config: %w", err)
	}

	brandPath := filepath.Join(configDir, "brand.json")
	if err := os.WriteFile(brandPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write brand config: %w", err)
	}

	return nil
}

// TenantRegistry holds the global tenant configuration
type TenantRegistry struct {
	Tenants map[string]TenantInfo `json:"tenants"`
}

// TenantInfo holds tenant metadata
type TenantInfo struct {
	TenantID     string   `json:"tenantId"`
	Domains      []string `json:"domains"`
	Status       string   `json:"status"`       // "unknown", "inactive", "active"
	DatabaseType string   `json:"databaseType"` // "turso", "sqlite3"
}

// LoadTenantRegistry loads the global tenant registry
func LoadTenantRegistry() (*TenantRegistry, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not find user home directory: %w", err)
	}

	registryPath := filepath.Join(homeDir, "sitepanel-go-server", "config", "sitepanel", "tenants.json")

	if _, err := os.Stat(registryPath); os.IsNotExist(err) {
		// Create default registry if it doesn't exist
		defaultRegistry := &TenantRegistry{
			Tenants: map[string]TenantInfo{
				"default": {
					TenantID:     "default",
					Domains:      []string{"*"},
					Status:       "inactive",
					DatabaseType: "",
				},
			},
		}
		return defaultRegistry, nil
	}

	data, err := os.ReadFile(registryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tenant registry: %w", err)
	}

	var registry TenantRegistry
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse tenant registry: %w", err)
	}

	return &registry, nil
}

// RegisterTenant adds a new tenant to the registry
func RegisterTenant(tenantID string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not find user home directory: %w", err)
	}

	registryPath := filepath.Join(homeDir, "sitepanel-go-server", "config", "sitepanel", "tenants.json")

	registry, err := LoadTenantRegistry()
	if err != nil {
		return err
	}

	// Add tenant if it doesn't exist
	if _, exists := registry.Tenants[tenantID]; !exists {
		registry.Tenants[tenantID] = TenantInfo{
			TenantID:     tenantID,
			Domains:      []string{"*"},
			Status:       "inactive",
			DatabaseType: "",
		}

		registryDir := filepath.Dir(registryPath)
		if err := os.MkdirAll(registryDir, 0755); err != nil {
			return fmt.Errorf("failed to create registry directory: %w", err)
		}

		data, err := json.MarshalIndent(registry, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal registry: %w", err)
		}

		if err := os.WriteFile(registryPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write registry: %w", err)
		}
	}

	return nil
}
