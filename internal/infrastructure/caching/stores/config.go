// Package stores provides concrete cache store implementations
package stores

import (
	"sync"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/types"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
)

// ConfigStore implements configuration caching operations with tenant isolation
type ConfigStore struct {
	tenantCaches map[string]*types.TenantConfigCache
	mu           sync.RWMutex
	logger       *logging.ChanneledLogger
}

// NewConfigStore creates a new configuration cache store
func NewConfigStore(logger *logging.ChanneledLogger) *ConfigStore {
	if logger != nil {
		logger.Cache().Info("Initializing configuration cache store")
	}
	return &ConfigStore{
		tenantCaches: make(map[string]*types.TenantConfigCache),
		logger:       logger,
	}
}

// InitializeTenant creates cache structures for a tenant
func (cs *ConfigStore) InitializeTenant(tenantID string) {
	start := time.Now()
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.logger != nil {
		cs.logger.Cache().Debug("Initializing tenant configuration cache", "tenantId", tenantID)
	}

	if cs.tenantCaches[tenantID] == nil {
		cs.tenantCaches[tenantID] = &types.TenantConfigCache{
			BrandConfig:            nil,
			BrandConfigLastUpdated: time.Time{},
			LastUpdated:            time.Now().UTC(),
		}

		if cs.logger != nil {
			cs.logger.Cache().Info("Tenant configuration cache initialized", "tenantId", tenantID, "duration", time.Since(start))
		}
	}
}

// GetTenantCache safely retrieves a tenant's config cache
func (cs *ConfigStore) GetTenantCache(tenantID string) (*types.TenantConfigCache, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	cache, exists := cs.tenantCaches[tenantID]
	return cache, exists
}

// GetBrandConfig retrieves cached brand configuration
func (cs *ConfigStore) GetBrandConfig(tenantID string) (*types.BrandConfig, bool) {
	start := time.Now()
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		if cs.logger != nil {
			cs.logger.Cache().Debug("Cache operation", "operation", "get", "type", "brand_config", "tenantId", tenantID, "hit", false, "reason", "tenant_not_initialized", "duration", time.Since(start))
		}
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	if cache.BrandConfig == nil {
		if cs.logger != nil {
			cs.logger.Cache().Debug("Cache operation", "operation", "get", "type", "brand_config", "tenantId", tenantID, "hit", false, "reason", "nil", "duration", time.Since(start))
		}
		return nil, false
	}

	if cs.logger != nil {
		cs.logger.Cache().Debug("Cache operation", "operation", "get", "type", "brand_config", "tenantId", tenantID, "hit", true, "duration", time.Since(start))
	}

	// Brand config has no TTL - it's loaded once and cached until invalidated
	return cache.BrandConfig, true
}

// SetBrandConfig stores brand configuration
func (cs *ConfigStore) SetBrandConfig(tenantID string, config *types.BrandConfig) {
	start := time.Now()
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		cs.InitializeTenant(tenantID)
		cache, _ = cs.GetTenantCache(tenantID)
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	cache.BrandConfig = config
	cache.BrandConfigLastUpdated = time.Now().UTC()
	cache.LastUpdated = time.Now().UTC()

	if cs.logger != nil {
		cs.logger.Cache().Debug("Cache operation", "operation", "set", "type", "brand_config", "tenantId", tenantID, "duration", time.Since(start))
	}
}

// InvalidateBrandConfig clears cached brand configuration
func (cs *ConfigStore) InvalidateBrandConfig(tenantID string) {
	start := time.Now()
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	cache.BrandConfig = nil
	cache.BrandConfigLastUpdated = time.Time{}
	cache.LastUpdated = time.Now().UTC()

	if cs.logger != nil {
		cs.logger.Cache().Debug("Cache operation", "operation", "invalidate", "type", "brand_config", "tenantId", tenantID, "duration", time.Since(start))
	}
}
