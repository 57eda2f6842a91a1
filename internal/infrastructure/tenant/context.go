// Package tenant provides tenant context management for multi-tenant support.
package tenant

import (
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/repositories"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/persistence/content"
)

// Context holds tenant-specific request context
type Context struct {
	TenantID     string
	Config       *Config
	Database     *Database
	Status       string
	CacheManager *manager.Manager
	Logger       *logging.ChanneledLogger
}

// Close cleans up the tenant context
func (ctx *Context) Close() error {
	if ctx.Database != nil {
		return ctx.Database.Close()
	}
	return nil
}

// GetTenantID returns the tenant ID for this context
func (ctx *Context) GetTenantID() string {
	return ctx.TenantID
}

// GetConfig returns the tenant configuration
func (ctx *Context) GetConfig() *Config {
	return ctx.Config
}

// GetDatabase returns the tenant database connection
func (ctx *Context) GetDatabase() *Database {
	return ctx.Database
}

// GetStatus returns the tenant status
func (ctx *Context) GetStatus() string {
	return ctx.Status
}

// GetCacheManager returns the cache manager
func (ctx *Context) GetCacheManager() *manager.Manager {
	return ctx.CacheManager
}

// IsActive returns true if the tenant is active
func (ctx *Context) IsActive() bool {
	return ctx.Status == "active"
}

// IsReserved returns true if the tenant is reserved (awaiting activation)
func (ctx *Context) IsReserved() bool {
	return ctx.Status == "reserved"
}

// GetDatabaseInfo returns database connection information for logging
func (ctx *Context) GetDatabaseInfo() string {
	if ctx.Database != nil {
		return ctx.Database.GetConnectionInfo()
	}
	return "no database connection"
}

// =============================================================================
// Repository Factory Methods
// =============================================================================

// HeroRepo returns a hero repository instance
func (ctx *Context) HeroRepo() repositories.HeroRepository {
	return content.NewHeroRepository(ctx.Database.Conn, ctx.CacheManager, ctx.Logger)
}

// FaqRepo returns an faq repository instance
func (ctx *Context) FaqRepo() repositories.FaqRepository {
	return content.NewFaqRepository(ctx.Database.Conn, ctx.CacheManager, ctx.Logger)
}

// CtaRepo returns a cta repository instance
func (ctx *Context) CtaRepo() repositories.CtaRepository {
	return content.NewCtaRepository(ctx.Database.Conn, ctx.CacheManager, ctx.Logger)
}

// FormRepo returns a form repository instance
func (ctx *Context) FormRepo() repositories.FormRepository {
	return content.NewFormRepository(ctx.Database.Conn, ctx.CacheManager, ctx.Logger)
}

// MediaSectionRepo returns a media section repository instance
func (ctx *Context) MediaSectionRepo() repositories.MediaSectionRepository {
	return content.NewMediaSectionRepository(ctx.Database.Conn, ctx.CacheManager, ctx.Logger)
}

// SeoRepo returns an seo repository instance
func (ctx *Context) SeoRepo() repositories.SeoRepository {
	return content.NewSeoRepository(ctx.Database.Conn, ctx.CacheManager, ctx.Logger)
}
