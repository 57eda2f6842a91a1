package services

import (
	"fmt"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/cleanup"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/tenant"
)

// CacheWarmerService loads every tenant's content into the cache at
// startup so the first admin request never pays the cold-read cost.
type CacheWarmerService struct{}

// NewCacheWarmerService creates a new cache warmer service
func NewCacheWarmerService() *CacheWarmerService {
	return &CacheWarmerService{}
}

// WarmTenant loads all content collections for one tenant. Repositories
// populate the cache as a side effect of the full-collection reads.
func (s *CacheWarmerService) WarmTenant(tenantCtx *tenant.Context) error {
	tenantID := tenantCtx.TenantID

	if _, err := tenantCtx.HeroRepo().FindAll(tenantID); err != nil {
		return fmt.Errorf("warming heroes for tenant %s: %w", tenantID, err)
	}
	if _, err := tenantCtx.FaqRepo().FindAll(tenantID); err != nil {
		return fmt.Errorf("warming faqs for tenant %s: %w", tenantID, err)
	}
	if _, err := tenantCtx.CtaRepo().FindAll(tenantID); err != nil {
		return fmt.Errorf("warming ctas for tenant %s: %w", tenantID, err)
	}
	if _, err := tenantCtx.FormRepo().FindAll(tenantID); err != nil {
		return fmt.Errorf("warming forms for tenant %s: %w", tenantID, err)
	}
	if _, err := tenantCtx.MediaSectionRepo().FindAll(tenantID); err != nil {
		return fmt.Errorf("warming media sections for tenant %s: %w", tenantID, err)
	}
	if _, err := tenantCtx.SeoRepo().Find(tenantID); err != nil {
		return fmt.Errorf("warming seo settings for tenant %s: %w", tenantID, err)
	}

	if tenantCtx.Config.BrandConfig != nil {
		tenantCtx.CacheManager.SetBrandConfig(tenantID, tenantCtx.Config.BrandConfig)
	}

	return nil
}

// WarmAllTenants warms every active tenant in the registry, skipping any
// tenant whose warming lock is already held, and prints a per-tenant
// report once its cache is loaded.
func (s *CacheWarmerService) WarmAllTenants(tenantManager *tenant.Manager, reporter *cleanup.Reporter) error {
	registry, err := tenant.LoadTenantRegistry()
	if err != nil {
		return fmt.Errorf("loading tenant registry: %w", err)
	}

	warmingLock := caching.GetGlobalWarmingLock()
	logger := tenantManager.GetLogger()

	for tenantID, info := range registry.Tenants {
		if info.Status != "active" {
			continue
		}
		if !warmingLock.TryLock(tenantID) {
			reporter.LogWarning("Skipping tenant %s, warming already in progress", tenantID)
			continue
		}

		start := time.Now()
		tenantCtx, err := tenantManager.NewContextFromID(tenantID)
		if err != nil {
			warmingLock.Unlock(tenantID)
			reporter.LogError("Failed to get tenant context for "+tenantID, err)
			continue
		}

		if err := s.WarmTenant(tenantCtx); err != nil {
			warmingLock.Unlock(tenantID)
			reporter.LogError("Cache warming failed for "+tenantID, err)
			continue
		}
		warmingLock.Unlock(tenantID)

		if logger != nil {
			logger.Cache().Info("Tenant cache warmed", "tenantId", tenantID, "duration", time.Since(start))
		}
		fmt.Print(reporter.GenerateTenantReport(tenantID))
	}

	return nil
}
