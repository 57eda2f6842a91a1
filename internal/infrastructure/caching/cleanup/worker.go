// Package cleanup provides background worker
package cleanup

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/tenant"
)

// Worker handles background cache cleanup operations
type Worker struct {
	cache  interfaces.Cache
	config *Config
}

// NewWorker creates a new cleanup worker with injected configuration
func NewWorker(cache interfaces.Cache, config *Config) *Worker {
	return &Worker{
		cache:  cache,
		config: config,
	}
}

// Start begins the cleanup worker routine, using the configured interval
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.config.CleanupInterval)
	defer ticker.Stop()

	log.Printf("Cache cleanup worker started (interval: %v, verbose: %v)",
		w.config.CleanupInterval, w.config.VerboseReporting)

	for {
		select {
		case <-ctx.Done():
			log.Println("Cache cleanup worker stopping, flushing caches...")
			w.cache.InvalidateAll()
			return
		case <-ticker.C:
			w.performCleanup(ctx)
		}
	}
}

// performCleanup executes cleanup for all active tenants
func (w *Worker) performCleanup(ctx context.Context) {
	start := time.Now()
	reporter := NewReporter(w.cache)

	tenants, err := w.getActiveTenants()
	if err != nil {
		reporter.LogError("Cache cleanup failed to get active tenants", err)
		return
	}

	if w.config.VerboseReporting {
		reporter.LogStage("PERIODIC CACHE CLEANUP")

		for _, tenantID := range tenants {
			fmt.Print(reporter.GenerateTenantReport(tenantID))
		}
	}

	var totalCleaned int
	for _, tenantID := range tenants {
		select {
		case <-ctx.Done():
			return
		default:
			cleaned := w.cleanupTenant(tenantID)
			totalCleaned += cleaned
		}
	}

	duration := time.Since(start)
	if totalCleaned > 0 {
		reporter.LogSuccess("Cache cleanup finished: %d items cleaned from %d tenants in %v",
			totalCleaned, len(tenants), duration)
	} else if w.config.VerboseReporting {
		reporter.LogInfo("Cache cleanup completed - no expired items found (%v)", duration)
	}
}

// cleanupTenant performs TTL-based cleanup for a single tenant
func (w *Worker) cleanupTenant(tenantID string) int {
	var totalCleaned int
	now := time.Now().UTC()

	// Type assert to access the Manager's underlying content cache
	mgr, ok := w.cache.(*manager.Manager)
	if !ok {
		w.cache.InvalidateContentCache(tenantID)
		return 1 // Conservative estimate
	}

	contentCache, err := mgr.GetTenantContentCache(tenantID)
	if err == nil && contentCache != nil {
		contentCache.Mu.Lock()
		if time.Since(contentCache.LastUpdated) > w.config.ContentCacheTTL {
			contentCache.Heroes = make(map[string]*content.HeroNode)
			contentCache.Faqs = make(map[string]*content.FaqNode)
			contentCache.Ctas = make(map[string]*content.CtaNode)
			contentCache.Forms = make(map[string]*content.FormNode)
			contentCache.MediaSections = make(map[string]*content.MediaSectionNode)
			contentCache.Seo = nil
			contentCache.FormSlugToID = make(map[string]string)
			contentCache.HeroesByPage = make(map[string][]string)
			contentCache.FaqsByCategory = make(map[string][]string)
			contentCache.CtasByHeader = make(map[string][]string)
			contentCache.AllHeroIDs = nil
			contentCache.AllFaqIDs = nil
			contentCache.AllCtaIDs = nil
			contentCache.AllFormIDs = nil
			contentCache.AllMediaSectionIDs = nil
			contentCache.LastUpdated = now
			totalCleaned++
		}
		contentCache.Mu.Unlock()
	}

	return totalCleaned
}

// getActiveTenants loads the tenant registry and returns active tenant IDs
func (w *Worker) getActiveTenants() ([]string, error) {
	registry, err := tenant.LoadTenantRegistry()
	if err != nil {
		return nil, err
	}

	activeTenants := make([]string, 0)
	for tenantID, tenantInfo := range registry.Tenants {
		if tenantInfo.Status == "active" {
			activeTenants = append(activeTenants, tenantID)
		}
	}
	return activeTenants, nil
}
