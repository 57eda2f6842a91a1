// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/AtRiskMedia/sitepanel-go/internal/application/services"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/tenant"
)

// Container holds the singleton services and infrastructure
// dependencies shared by every request. Content services are not held
// here: they are stateless and built per request from the tenant
// context's repositories.
type Container struct {
	AuthService        *services.AuthService
	CacheWarmerService *services.CacheWarmerService

	TenantManager *tenant.Manager
	CacheManager  *manager.Manager
	Logger        *logging.ChanneledLogger
	PerfTracker   *performance.Tracker
}

// NewContainer creates and wires all singleton services
func NewContainer(tenantManager *tenant.Manager, cacheManager *manager.Manager, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *Container {
	return &Container{
		AuthService:        services.NewAuthService(logger, perfTracker),
		CacheWarmerService: services.NewCacheWarmerService(),

		TenantManager: tenantManager,
		CacheManager:  cacheManager,
		Logger:        logger,
		PerfTracker:   perfTracker,
	}
}
