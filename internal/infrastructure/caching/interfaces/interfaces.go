// Package interfaces defines cache operation contracts for multi-tenant content management.
package interfaces

import (
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/types"
)

// ContentCache defines operations for content caching
type ContentCache interface {
	GetHero(tenantID, id string) (*content.HeroNode, bool)
	SetHero(tenantID string, hero *content.HeroNode)
	GetAllHeroIDs(tenantID string) ([]string, bool)
	SetAllHeroIDs(tenantID string, ids []string)
	GetHeroIDsByPage(tenantID, pageID string) ([]string, bool)
	SetHeroIDsByPage(tenantID, pageID string, ids []string)
	InvalidateHero(tenantID, id string)
	AddHeroID(tenantID, id string)
	GetFaq(tenantID, id string) (*content.FaqNode, bool)
	SetFaq(tenantID string, faq *content.FaqNode)
	GetAllFaqIDs(tenantID string) ([]string, bool)
	SetAllFaqIDs(tenantID string, ids []string)
	GetFaqIDsByCategory(tenantID, categoryID string) ([]string, bool)
	SetFaqIDsByCategory(tenantID, categoryID string, ids []string)
	InvalidateFaq(tenantID, id string)
	AddFaqID(tenantID, id string)
	GetCta(tenantID, id string) (*content.CtaNode, bool)
	SetCta(tenantID string, cta *content.CtaNode)
	GetAllCtaIDs(tenantID string) ([]string, bool)
	SetAllCtaIDs(tenantID string, ids []string)
	GetCtaIDsByHeader(tenantID, headerID string) ([]string, bool)
	SetCtaIDsByHeader(tenantID, headerID string, ids []string)
	InvalidateCta(tenantID, id string)
	AddCtaID(tenantID, id string)
	GetForm(tenantID, id string) (*content.FormNode, bool)
	SetForm(tenantID string, form *content.FormNode)
	GetAllFormIDs(tenantID string) ([]string, bool)
	SetAllFormIDs(tenantID string, ids []string)
	GetFormBySlug(tenantID, slug string) (string, bool)
	InvalidateForm(tenantID, id string)
	AddFormID(tenantID, id string)
	GetMediaSection(tenantID, id string) (*content.MediaSectionNode, bool)
	SetMediaSection(tenantID string, section *content.MediaSectionNode)
	GetAllMediaSectionIDs(tenantID string) ([]string, bool)
	SetAllMediaSectionIDs(tenantID string, ids []string)
	InvalidateMediaSection(tenantID, id string)
	AddMediaSectionID(tenantID, id string)
	GetSeo(tenantID string) (*content.SeoNode, bool)
	SetSeo(tenantID string, seo *content.SeoNode)
	InvalidateSeo(tenantID string)
	InvalidateContentCache(tenantID string)
}

// ConfigCache defines operations for tenant configuration caching
type ConfigCache interface {
	GetBrandConfig(tenantID string) (*types.BrandConfig, bool)
	SetBrandConfig(tenantID string, config *types.BrandConfig)
	InvalidateBrandConfig(tenantID string)
}

// Cache is the main interface that combines all cache operations
type Cache interface {
	ContentCache
	ConfigCache
	InitializeTenant(tenantID string)
	InvalidateTenant(tenantID string)
	GetTenantStats(tenantID string) CacheStats
	InvalidateAll()
	Health() map[string]any
}

type CacheStats struct {
	Hits   int   `json:"hits"`
	Misses int   `json:"misses"`
	Size   int64 `json:"size"`
}

type CacheTTL time.Duration

const (
	TTLNever    CacheTTL = CacheTTL(0)
	TTL1Minute  CacheTTL = CacheTTL(time.Minute)
	TTL5Minutes CacheTTL = CacheTTL(5 * time.Minute)
	TTL1Hour    CacheTTL = CacheTTL(time.Hour)
	TTL24Hours  CacheTTL = CacheTTL(24 * time.Hour)
)
