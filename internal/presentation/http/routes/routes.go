// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/AtRiskMedia/sitepanel-go/internal/application/container"
	"github.com/AtRiskMedia/sitepanel-go/internal/presentation/http/handlers"
	"github.com/AtRiskMedia/sitepanel-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger, container.PerfTracker)
	configHandlers := handlers.NewConfigHandlers(container.Logger, container.PerfTracker)
	heroHandlers := handlers.NewHeroHandlers(container.Logger, container.PerfTracker)
	faqHandlers := handlers.NewFaqHandlers(container.Logger, container.PerfTracker)
	ctaHandlers := handlers.NewCtaHandlers(container.Logger, container.PerfTracker)
	formHandlers := handlers.NewFormHandlers(container.Logger, container.PerfTracker)
	mediaSectionHandlers := handlers.NewMediaSectionHandlers(container.Logger, container.PerfTracker)
	seoHandlers := handlers.NewSeoHandlers(container.Logger, container.PerfTracker)
	contentMapHandlers := handlers.NewContentMapHandlers(container.Logger, container.PerfTracker)

	// API routes with tenant middleware
	api := r.Group("/api/v1")
	api.Use(middleware.TenantMiddleware(container.TenantManager, container.PerfTracker))
	api.Use(middleware.DomainValidationMiddleware(container.TenantManager))
	{
		// Authentication routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandlers.PostLogin)
			auth.POST("/logout", authHandlers.PostLogout)
			auth.GET("/status", authHandlers.GetAuthStatus)
		}

		// Public form submissions
		api.POST("/forms/:id/submissions", formHandlers.SubmitForm)

		// Content inventory
		api.GET("/content/full-map", contentMapHandlers.GetContentMap)

		// Config endpoints
		configGroup := api.Group("/config")
		{
			configGroup.GET("/brand", configHandlers.GetBrandConfig)
			configGroup.PUT("/brand", authHandlers.AuthMiddleware(), configHandlers.UpdateBrandConfig)
		}

		// Admin content endpoints
		admin := api.Group("/admin")
		{
			// Read-Only Routes (Public within tenant)
			admin.GET("/heroes", heroHandlers.GetHeroes)
			admin.GET("/heroes/:id", heroHandlers.GetHeroByID)
			admin.GET("/faqs", faqHandlers.GetFaqs)
			admin.GET("/faqs/:id", faqHandlers.GetFaqByID)
			admin.GET("/ctas", ctaHandlers.GetCtas)
			admin.GET("/ctas/:id", ctaHandlers.GetCtaByID)
			admin.GET("/forms", formHandlers.GetForms)
			admin.GET("/forms/:id", formHandlers.GetFormByID)
			admin.GET("/forms/slug/:slug", formHandlers.GetFormBySlug)
			admin.GET("/media-sections", mediaSectionHandlers.GetMediaSections)
			admin.GET("/media-sections/:id", mediaSectionHandlers.GetMediaSectionByID)
			admin.GET("/seo", seoHandlers.GetSeo)

			// Mutation Routes (Protected)
			mutations := admin.Group("/")
			mutations.Use(authHandlers.AuthMiddleware())
			{
				mutations.POST("/heroes/create", heroHandlers.CreateHero)
				mutations.PUT("/heroes/:id", heroHandlers.UpdateHero)
				mutations.DELETE("/heroes/:id", heroHandlers.DeleteHero)
				mutations.PUT("/heroes/order", heroHandlers.ReorderHeroes)
				mutations.POST("/faqs/create", faqHandlers.CreateFaq)
				mutations.PUT("/faqs/:id", faqHandlers.UpdateFaq)
				mutations.DELETE("/faqs/:id", faqHandlers.DeleteFaq)
				mutations.PUT("/faqs/order", faqHandlers.ReorderFaqs)
				mutations.POST("/ctas/create", ctaHandlers.CreateCta)
				mutations.PUT("/ctas/:id", ctaHandlers.UpdateCta)
				mutations.DELETE("/ctas/:id", ctaHandlers.DeleteCta)
				mutations.PUT("/ctas/order", ctaHandlers.ReorderCtas)
				mutations.POST("/forms/create", formHandlers.CreateForm)
				mutations.PUT("/forms/:id", formHandlers.UpdateForm)
				mutations.DELETE("/forms/:id", formHandlers.DeleteForm)
				mutations.POST("/media-sections/create", mediaSectionHandlers.CreateMediaSection)
				mutations.PUT("/media-sections/:id", mediaSectionHandlers.UpdateMediaSection)
				mutations.DELETE("/media-sections/:id", mediaSectionHandlers.DeleteMediaSection)
				mutations.PUT("/media-sections/order", mediaSectionHandlers.ReorderMediaSections)
				mutations.PUT("/seo", seoHandlers.PutSeo)
			}
		}
	}

	return r
}
