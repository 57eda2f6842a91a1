// Package manager provides centralized cache operations with proper tenant isolation
package manager

import (
	"fmt"
	"sync"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/stores"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/types"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
)

// Interface assertion to ensure Manager implements the full cache contract.
var _ interfaces.Cache = (*Manager)(nil)

// Manager provides centralized cache operations with proper tenant isolation by delegating to specialized stores.
type Manager struct {
	Mu           sync.RWMutex
	LastAccessed map[string]time.Time
	contentStore *stores.ContentStore
	configStore  *stores.ConfigStore
	logger       *logging.ChanneledLogger
}

func NewManager(logger *logging.ChanneledLogger) *Manager {
	if logger != nil {
		logger.Cache().Info("Initializing cache manager", "stores", []string{"content", "config"})
	}

	return &Manager{
		LastAccessed: make(map[string]time.Time),
		contentStore: stores.NewContentStore(logger),
		configStore:  stores.NewConfigStore(logger),
		logger:       logger,
	}
}

func (m *Manager) GetTenantContentCache(tenantID string) (*types.TenantContentCache, error) {
	cache, exists := m.contentStore.GetTenantCache(tenantID)
	if !exists {
		return nil, fmt.Errorf("tenant %s content cache not initialized", tenantID)
	}
	return cache, nil
}

func (m *Manager) updateTenantAccessTime(tenantID string) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.LastAccessed[tenantID] = time.Now().UTC()
}

func (m *Manager) InitializeTenant(tenantID string) {
	start := time.Now()
	if m.logger != nil {
		m.logger.Cache().Debug("Initializing tenant cache", "tenantId", tenantID)
	}

	m.contentStore.InitializeTenant(tenantID)
	m.configStore.InitializeTenant(tenantID)
	m.updateTenantAccessTime(tenantID)

	if m.logger != nil {
		m.logger.Cache().Info("Tenant cache initialized", "tenantId", tenantID, "duration", time.Since(start))
	}
}

func (m *Manager) GetHero(tenantID, id string) (*content.HeroNode, bool) {
	return m.contentStore.GetHero(tenantID, id)
}

func (m *Manager) SetHero(tenantID string, node *content.HeroNode) {
	m.contentStore.SetHero(tenantID, node)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetAllHeroIDs(tenantID string) ([]string, bool) {
	return m.contentStore.GetAllHeroIDs(tenantID)
}

func (m *Manager) SetAllHeroIDs(tenantID string, ids []string) {
	m.contentStore.SetAllHeroIDs(tenantID, ids)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetHeroIDsByPage(tenantID, pageID string) ([]string, bool) {
	return m.contentStore.GetHeroIDsByPage(tenantID, pageID)
}

func (m *Manager) SetHeroIDsByPage(tenantID, pageID string, ids []string) {
	m.contentStore.SetHeroIDsByPage(tenantID, pageID, ids)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) InvalidateHero(tenantID, id string) {
	m.contentStore.InvalidateHero(tenantID, id)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) AddHeroID(tenantID, id string) {
	m.contentStore.AddHeroID(tenantID, id)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetFaq(tenantID, id string) (*content.FaqNode, bool) {
	return m.contentStore.GetFaq(tenantID, id)
}

func (m *Manager) SetFaq(tenantID string, node *content.FaqNode) {
	m.contentStore.SetFaq(tenantID, node)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetAllFaqIDs(tenantID string) ([]string, bool) {
	return m.contentStore.GetAllFaqIDs(tenantID)
}

func (m *Manager) SetAllFaqIDs(tenantID string, ids []string) {
	m.contentStore.SetAllFaqIDs(tenantID, ids)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetFaqIDsByCategory(tenantID, categoryID string) ([]string, bool) {
	return m.contentStore.GetFaqIDsByCategory(tenantID, categoryID)
}

func (m *Manager) SetFaqIDsByCategory(tenantID, categoryID string, ids []string) {
	m.contentStore.SetFaqIDsByCategory(tenantID, categoryID, ids)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) InvalidateFaq(tenantID, id string) {
	m.contentStore.InvalidateFaq(tenantID, id)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) AddFaqID(tenantID, id string) {
	m.contentStore.AddFaqID(tenantID, id)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetCta(tenantID, id string) (*content.CtaNode, bool) {
	return m.contentStore.GetCta(tenantID, id)
}

func (m *Manager) SetCta(tenantID string, node *content.CtaNode) {
	m.contentStore.SetCta(tenantID, node)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetAllCtaIDs(tenantID string) ([]string, bool) {
	return m.contentStore.GetAllCtaIDs(tenantID)
}

func (m *Manager) SetAllCtaIDs(tenantID string, ids []string) {
	m.contentStore.SetAllCtaIDs(tenantID, ids)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetCtaIDsByHeader(tenantID, headerID string) ([]string, bool) {
	return m.contentStore.GetCtaIDsByHeader(tenantID, headerID)
}

func (m *Manager) SetCtaIDsByHeader(tenantID, headerID string, ids []string) {
	m.contentStore.SetCtaIDsByHeader(tenantID, headerID, ids)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) InvalidateCta(tenantID, id string) {
	m.contentStore.InvalidateCta(tenantID, id)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) AddCtaID(tenantID, id string) {
	m.contentStore.AddCtaID(tenantID, id)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetForm(tenantID, id string) (*content.FormNode, bool) {
	return m.contentStore.GetForm(tenantID, id)
}

func (m *Manager) SetForm(tenantID string, node *content.FormNode) {
	m.contentStore.SetForm(tenantID, node)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetAllFormIDs(tenantID string) ([]string, bool) {
	return m.contentStore.GetAllFormIDs(tenantID)
}

func (m *Manager) SetAllFormIDs(tenantID string, ids []string) {
	m.contentStore.SetAllFormIDs(tenantID, ids)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetFormBySlug(tenantID, slug string) (string, bool) {
	return m.contentStore.GetFormBySlug(tenantID, slug)
}

func (m *Manager) InvalidateForm(tenantID, id string) {
	m.contentStore.InvalidateForm(tenantID, id)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) AddFormID(tenantID, id string) {
	m.contentStore.AddFormID(tenantID, id)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetMediaSection(tenantID, id string) (*content.MediaSectionNode, bool) {
	return m.contentStore.GetMediaSection(tenantID, id)
}

func (m *Manager) SetMediaSection(tenantID string, node *content.MediaSectionNode) {
	m.contentStore.SetMediaSection(tenantID, node)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetAllMediaSectionIDs(tenantID string) ([]string, bool) {
	return m.contentStore.GetAllMediaSectionIDs(tenantID)
}

func (m *Manager) SetAllMediaSectionIDs(tenantID string, ids []string) {
	m.contentStore.SetAllMediaSectionIDs(tenantID, ids)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) InvalidateMediaSection(tenantID, id string) {
	m.contentStore.InvalidateMediaSection(tenantID, id)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) AddMediaSectionID(tenantID, id string) {
	m.contentStore.AddMediaSectionID(tenantID, id)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetSeo(tenantID string) (*content.SeoNode, bool) {
	return m.contentStore.GetSeo(tenantID)
}

func (m *Manager) SetSeo(tenantID string, node *content.SeoNode) {
	m.contentStore.SetSeo(tenantID, node)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) InvalidateSeo(tenantID string) {
	m.contentStore.InvalidateSeo(tenantID)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) GetBrandConfig(tenantID string) (*types.BrandConfig, bool) {
	return m.configStore.GetBrandConfig(tenantID)
}

func (m *Manager) SetBrandConfig(tenantID string, config *types.BrandConfig) {
	m.configStore.SetBrandConfig(tenantID, config)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) InvalidateBrandConfig(tenantID string) {
	m.configStore.InvalidateBrandConfig(tenantID)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) InvalidateContentCache(tenantID string) {
	m.contentStore.InvalidateContentCache(tenantID)
	m.updateTenantAccessTime(tenantID)
}

func (m *Manager) InvalidateTenant(tenantID string) {
	start := time.Now()
	if m.logger != nil {
		m.logger.Cache().Debug("Invalidating tenant cache", "tenantId", tenantID)
	}

	m.contentStore.InvalidateContentCache(tenantID)
	m.configStore.InvalidateBrandConfig(tenantID)
	m.updateTenantAccessTime(tenantID)

	if m.logger != nil {
		m.logger.Cache().Info("Tenant cache invalidated", "tenantId", tenantID, "duration", time.Since(start))
	}
}

func (m *Manager) GetAllTenantIDs() []string {
	return m.contentStore.GetAllTenantIDs()
}

func (m *Manager) GetTenantStats(tenantID string) interfaces.CacheStats {
	cache, err := m.GetTenantContentCache(tenantID)
	if err != nil {
		return interfaces.CacheStats{}
	}
	cache.Mu.RLock()
	defer cache.Mu.RUnlock()
	size := len(cache.Heroes) + len(cache.Faqs) + len(cache.Ctas) + len(cache.Forms) + len(cache.MediaSections)
	if cache.Seo != nil {
		size++
	}
	return interfaces.CacheStats{Size: int64(size)}
}

func (m *Manager) InvalidateAll() {
	for _, tenantID := range m.contentStore.GetAllTenantIDs() {
		m.InvalidateTenant(tenantID)
	}
}

func (m *Manager) Health() map[string]any {
	return map[string]any{"status": "ok", "tenants": len(m.contentStore.GetAllTenantIDs())}
}
