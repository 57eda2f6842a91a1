// Package stores provides concrete cache store implementations
package stores

import (
	"sync"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/types"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
)

// ContentStore implements content caching operations with tenant isolation
type ContentStore struct {
	tenantCaches map[string]*types.TenantContentCache
	mu           sync.RWMutex
	logger       *logging.ChanneledLogger
}

// NewContentStore creates a new content cache store
func NewContentStore(logger *logging.ChanneledLogger) *ContentStore {
	return &ContentStore{
		tenantCaches: make(map[string]*types.TenantContentCache),
		logger:       logger,
	}
}

// InitializeTenant creates cache structures for a tenant
func (cs *ContentStore) InitializeTenant(tenantID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.tenantCaches[tenantID] == nil {
		cs.tenantCaches[tenantID] = &types.TenantContentCache{
			Heroes:             make(map[string]*content.HeroNode),
			Faqs:               make(map[string]*content.FaqNode),
			Ctas:               make(map[string]*content.CtaNode),
			Forms:              make(map[string]*content.FormNode),
			MediaSections:      make(map[string]*content.MediaSectionNode),
			Seo:                nil,
			FormSlugToID:       make(map[string]string),
			HeroesByPage:       make(map[string][]string),
			FaqsByCategory:     make(map[string][]string),
			CtasByHeader:       make(map[string][]string),
			AllHeroIDs:         make([]string, 0),
			AllFaqIDs:          make([]string, 0),
			AllCtaIDs:          make([]string, 0),
			AllFormIDs:         make([]string, 0),
			AllMediaSectionIDs: make([]string, 0),
			LastUpdated:        time.Now().UTC(),
		}
	}
}

// GetTenantCache safely retrieves a tenant's content cache
func (cs *ContentStore) GetTenantCache(tenantID string) (*types.TenantContentCache, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	cache, exists := cs.tenantCaches[tenantID]
	return cache, exists
}

// GetAllTenantIDs returns all tenant IDs present in the store
func (cs *ContentStore) GetAllTenantIDs() []string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	ids := make([]string, 0, len(cs.tenantCaches))
	for id := range cs.tenantCaches {
		ids = append(ids, id)
	}
	return ids
}

func (cs *ContentStore) getOrInitTenantCache(tenantID string) *types.TenantContentCache {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		cs.InitializeTenant(tenantID)
		cache, _ = cs.GetTenantCache(tenantID)
	}
	return cache
}

func removeIDFromList(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

// =============================================================================
// Hero Operations
// =============================================================================

// GetHero retrieves a hero section by ID
func (cs *ContentStore) GetHero(tenantID, id string) (*content.HeroNode, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	// Check cache expiration (24 hours TTL)
	if time.Since(cache.LastUpdated) > 24*time.Hour {
		return nil, false
	}

	node, exists := cache.Heroes[id]
	return node, exists
}

// SetHero stores a hero section
func (cs *ContentStore) SetHero(tenantID string, node *content.HeroNode) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	cache.Heroes[node.ID] = node
	cache.LastUpdated = time.Now().UTC()
}

// GetAllHeroIDs retrieves the cached list of all hero IDs
func (cs *ContentStore) GetAllHeroIDs(tenantID string) ([]string, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	if len(cache.AllHeroIDs) == 0 {
		return nil, false
	}
	ids := make([]string, len(cache.AllHeroIDs))
	copy(ids, cache.AllHeroIDs)
	return ids, true
}

// SetAllHeroIDs stores the list of all hero IDs
func (cs *ContentStore) SetAllHeroIDs(tenantID string, ids []string) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()
	cache.AllHeroIDs = ids
}

// GetHeroIDsByPage retrieves the ordered hero IDs for a page
func (cs *ContentStore) GetHeroIDsByPage(tenantID, pageID string) ([]string, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	ids, exists := cache.HeroesByPage[pageID]
	if !exists {
		return nil, false
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out, true
}

// SetHeroIDsByPage stores the ordered hero IDs for a page
func (cs *ContentStore) SetHeroIDsByPage(tenantID, pageID string, ids []string) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()
	cache.HeroesByPage[pageID] = ids
}

// InvalidateHero removes a single hero from the cache
func (cs *ContentStore) InvalidateHero(tenantID, id string) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	if node, ok := cache.Heroes[id]; ok {
		delete(cache.HeroesByPage, node.PageID)
	}
	delete(cache.Heroes, id)
	cache.AllHeroIDs = removeIDFromList(cache.AllHeroIDs, id)
	cache.LastUpdated = time.Now().UTC()
}

// AddHeroID appends a hero ID to the all-IDs list
func (cs *ContentStore) AddHeroID(tenantID, id string) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	for _, existing := range cache.AllHeroIDs {
		if existing == id {
			return
		}
	}
	cache.AllHeroIDs = append(cache.AllHeroIDs, id)
}

// =============================================================================
// FAQ Operations
// =============================================================================

// GetFaq retrieves an FAQ by ID
func (cs *ContentStore) GetFaq(tenantID, id string) (*content.FaqNode, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	if time.Since(cache.LastUpdated) > 24*time.Hour {
		return nil, false
	}

	node, exists := cache.Faqs[id]
	return node, exists
}

// SetFaq stores an FAQ
func (cs *ContentStore) SetFaq(tenantID string, node *content.FaqNode) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	cache.Faqs[node.ID] = node
	cache.LastUpdated = time.Now().UTC()
}

// GetAllFaqIDs retrieves the cached list of all FAQ IDs
func (cs *ContentStore) GetAllFaqIDs(tenantID string) ([]string, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	if len(cache.AllFaqIDs) == 0 {
		return nil, false
	}
	ids := make([]string, len(cache.AllFaqIDs))
	copy(ids, cache.AllFaqIDs)
	return ids, true
}

// SetAllFaqIDs stores the list of all FAQ IDs
func (cs *ContentStore) SetAllFaqIDs(tenantID string, ids []string) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()
	cache.AllFaqIDs = ids
}

// GetFaqIDsByCategory retrieves the ordered FAQ IDs for a category
func (cs *ContentStore) GetFaqIDsByCategory(tenantID, categoryID string) ([]string, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	ids, exists := cache.FaqsByCategory[categoryID]
	if !exists {
		return nil, false
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out, true
}

// SetFaqIDsByCategory stores the ordered FAQ IDs for a category
func (cs *ContentStore) SetFaqIDsByCategory(tenantID, categoryID string, ids []string) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()
	cache.FaqsByCategory[categoryID] = ids
}

// InvalidateFaq removes a single FAQ from the cache
func (cs *ContentStore) InvalidateFaq(tenantID, id string) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	if node, ok := cache.Faqs[id]; ok {
		delete(cache.FaqsByCategory, node.CategoryID)
	}
	delete(cache.Faqs, id)
	cache.AllFaqIDs = removeIDFromList(cache.AllFaqIDs, id)
	cache.LastUpdated = time.Now().UTC()
}

// AddFaqID appends an FAQ ID to the all-IDs list
func (cs *ContentStore) AddFaqID(tenantID, id string) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	for _, existing := range cache.AllFaqIDs {
		if existing == id {
			return
		}
	}
	cache.AllFaqIDs = append(cache.AllFaqIDs, id)
}

// =============================================================================
// CTA Operations
// =============================================================================

// GetCta retrieves a CTA by ID
func (cs *ContentStore) GetCta(tenantID, id string) (*content.CtaNode, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	if time.Since(cache.LastUpdated) > 24*time.Hour {
		return nil, false
	}

	node, exists := cache.Ctas[id]
	return node, exists
}

// SetCta stores a CTA
func (cs *ContentStore) SetCta(tenantID string, node *content.CtaNode) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	cache.Ctas[node.ID] = node
	cache.LastUpdated = time.Now().UTC()
}

// GetAllCtaIDs retrieves the cached list of all CTA IDs
func (cs *ContentStore) GetAllCtaIDs(tenantID string) ([]string, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	if len(cache.AllCtaIDs) == 0 {
		return nil, false
	}
	ids := make([]string, len(cache.AllCtaIDs))
	copy(ids, cache.AllCtaIDs)
	return ids, true
}

// SetAllCtaIDs stores the list of all CTA IDs
func (cs *ContentStore) SetAllCtaIDs(tenantID string, ids []string) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()
	cache.AllCtaIDs = ids
}

// GetCtaIDsByHeader retrieves the ordered CTA IDs for a header
func (cs *ContentStore) GetCtaIDsByHeader(tenantID, headerID string) ([]string, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	ids, exists := cache.CtasByHeader[headerID]
	if !exists {
		return nil, false
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out, true
}

// SetCtaIDsByHeader stores the ordered CTA IDs for a header
func (cs *ContentStore) SetCtaIDsByHeader(tenantID, headerID string, ids []string) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()
	cache.CtasByHeader[headerID] = ids
}

// InvalidateCta removes a single CTA from the cache
func (cs *ContentStore) InvalidateCta(tenantID, id string) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	if node, ok := cache.Ctas[id]; ok {
		delete(cache.CtasByHeader, node.HeaderID)
	}
	delete(cache.Ctas, id)
	cache.AllCtaIDs = removeIDFromList(cache.AllCtaIDs, id)
	cache.LastUpdated = time.Now().UTC()
}

// AddCtaID appends a CTA ID to the all-IDs list
func (cs *ContentStore) AddCtaID(tenantID, id string) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	for _, existing := range cache.AllCtaIDs {
		if existing == id {
			return
		}
	}
	cache.AllCtaIDs = append(cache.AllCtaIDs, id)
}

// =============================================================================
// Form Operations
// =============================================================================

// GetForm retrieves a form by ID
func (cs *ContentStore) GetForm(tenantID, id string) (*content.FormNode, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	if time.Since(cache.LastUpdated) > 24*time.Hour {
		return nil, false
	}

	node, exists := cache.Forms[id]
	return node, exists
}

// SetForm stores a form and its slug index
func (cs *ContentStore) SetForm(tenantID string, node *content.FormNode) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	cache.Forms[node.ID] = node
	cache.FormSlugToID[node.Slug] = node.ID
	cache.LastUpdated = time.Now().UTC()
}

// GetAllFormIDs retrieves the cached list of all form IDs
func (cs *ContentStore) GetAllFormIDs(tenantID string) ([]string, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	if len(cache.AllFormIDs) == 0 {
		return nil, false
	}
	ids := make([]string, len(cache.AllFormIDs))
	copy(ids, cache.AllFormIDs)
	return ids, true
}

// SetAllFormIDs stores the list of all form IDs
func (cs *ContentStore) SetAllFormIDs(tenantID string, ids []string) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()
	cache.AllFormIDs = ids
}

// GetFormBySlug resolves a form slug to its ID
func (cs *ContentStore) GetFormBySlug(tenantID, slug string) (string, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return "", false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	id, exists := cache.FormSlugToID[slug]
	return id, exists
}

// InvalidateForm removes a single form from the cache
func (cs *ContentStore) InvalidateForm(tenantID, id string) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	if node, ok := cache.Forms[id]; ok {
		delete(cache.FormSlugToID, node.Slug)
	}
	delete(cache.Forms, id)
	cache.AllFormIDs = removeIDFromList(cache.AllFormIDs, id)
	cache.LastUpdated = time.Now().UTC()
}

// AddFormID appends a form ID to the all-IDs list
func (cs *ContentStore) AddFormID(tenantID, id string) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	for _, existing := range cache.AllFormIDs {
		if existing == id {
			return
		}
	}
	cache.AllFormIDs = append(cache.AllFormIDs, id)
}

// =============================================================================
// Media Section Operations
// =============================================================================

// GetMediaSection retrieves a media section by ID
func (cs *ContentStore) GetMediaSection(tenantID, id string) (*content.MediaSectionNode, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	if time.Since(cache.LastUpdated) > 24*time.Hour {
		return nil, false
	}

	node, exists := cache.MediaSections[id]
	return node, exists
}

// SetMediaSection stores a media section
func (cs *ContentStore) SetMediaSection(tenantID string, node *content.MediaSectionNode) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	cache.MediaSections[node.ID] = node
	cache.LastUpdated = time.Now().UTC()
}

// GetAllMediaSectionIDs retrieves the cached list of all media section IDs
func (cs *ContentStore) GetAllMediaSectionIDs(tenantID string) ([]string, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	if len(cache.AllMediaSectionIDs) == 0 {
		return nil, false
	}
	ids := make([]string, len(cache.AllMediaSectionIDs))
	copy(ids, cache.AllMediaSectionIDs)
	return ids, true
}

// SetAllMediaSectionIDs stores the list of all media section IDs
func (cs *ContentStore) SetAllMediaSectionIDs(tenantID string, ids []string) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()
	cache.AllMediaSectionIDs = ids
}

// InvalidateMediaSection removes a single media section from the cache
func (cs *ContentStore) InvalidateMediaSection(tenantID, id string) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	delete(cache.MediaSections, id)
	cache.AllMediaSectionIDs = removeIDFromList(cache.AllMediaSectionIDs, id)
	cache.LastUpdated = time.Now().UTC()
}

// AddMediaSectionID appends a media section ID to the all-IDs list
func (cs *ContentStore) AddMediaSectionID(tenantID, id string) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	for _, existing := range cache.AllMediaSectionIDs {
		if existing == id {
			return
		}
	}
	cache.AllMediaSectionIDs = append(cache.AllMediaSectionIDs, id)
}

// =============================================================================
// SEO Operations
// =============================================================================

// GetSeo retrieves the tenant-wide SEO settings
func (cs *ContentStore) GetSeo(tenantID string) (*content.SeoNode, bool) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return nil, false
	}

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	if cache.Seo == nil {
		return nil, false
	}
	return cache.Seo, true
}

// SetSeo stores the tenant-wide SEO settings
func (cs *ContentStore) SetSeo(tenantID string, node *content.SeoNode) {
	cache := cs.getOrInitTenantCache(tenantID)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	cache.Seo = node
	cache.LastUpdated = time.Now().UTC()
}

// InvalidateSeo clears the tenant-wide SEO settings
func (cs *ContentStore) InvalidateSeo(tenantID string) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	cache.Seo = nil
	cache.LastUpdated = time.Now().UTC()
}

// =============================================================================
// Bulk Invalidation
// =============================================================================

// InvalidateContentCache clears all content caches for a tenant
func (cs *ContentStore) InvalidateContentCache(tenantID string) {
	cache, exists := cs.GetTenantCache(tenantID)
	if !exists {
		return
	}

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	// Clear all content caches
	cache.Heroes = make(map[string]*content.HeroNode)
	cache.Faqs = make(map[string]*content.FaqNode)
	cache.Ctas = make(map[string]*content.CtaNode)
	cache.Forms = make(map[string]*content.FormNode)
	cache.MediaSections = make(map[string]*content.MediaSectionNode)
	cache.Seo = nil
	cache.FormSlugToID = make(map[string]string)
	cache.HeroesByPage = make(map[string][]string)
	cache.FaqsByCategory = make(map[string][]string)
	cache.CtasByHeader = make(map[string][]string)
	cache.AllHeroIDs = make([]string, 0)
	cache.AllFaqIDs = make([]string, 0)
	cache.AllCtaIDs = make([]string, 0)
	cache.AllFormIDs = make([]string, 0)
	cache.AllMediaSectionIDs = make([]string, 0)

	cache.LastUpdated = time.Now().UTC()
}
