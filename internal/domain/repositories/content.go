// Package repositories defines the repository interfaces for content entities.
// These repositories abstract the data persistence details, ensuring the core
// application is clean and decoupled from the database.
package repositories

import (
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
)

type HeroRepository interface {
	FindByID(tenantID, id string) (*content.HeroNode, error)
	FindByPage(tenantID, pageID string) ([]*content.HeroNode, error)
	FindAll(tenantID string) ([]*content.HeroNode, error)
	Store(tenantID string, hero *content.HeroNode) error
	Update(tenantID string, hero *content.HeroNode) error
	ReplaceOrder(tenantID, pageID string, ordered []*content.HeroNode) error
	Delete(tenantID, id string) error
}

type FaqRepository interface {
	FindByID(tenantID, id string) (*content.FaqNode, error)
	FindByCategory(tenantID, categoryID string) ([]*content.FaqNode, error)
	FindAll(tenantID string) ([]*content.FaqNode, error)
	Store(tenantID string, faq *content.FaqNode) error
	Update(tenantID string, faq *content.FaqNode) error
	ReplaceOrder(tenantID, categoryID string, ordered []*content.FaqNode) error
	Delete(tenantID, id string) error
}

type CtaRepository interface {
	FindByID(tenantID, id string) (*content.CtaNode, error)
	FindByHeader(tenantID, headerID string) ([]*content.CtaNode, error)
	FindAll(tenantID string) ([]*content.CtaNode, error)
	Store(tenantID string, cta *content.CtaNode) error
	Update(tenantID string, cta *content.CtaNode) error
	ReplaceOrder(tenantID, headerID string, ordered []*content.CtaNode) error
	Delete(tenantID, id string) error
}

type FormRepository interface {
	FindByID(tenantID, id string) (*content.FormNode, error)
	FindBySlug(tenantID, slug string) (*content.FormNode, error)
	FindAll(tenantID string) ([]*content.FormNode, error)
	Store(tenantID string, form *content.FormNode) error
	Update(tenantID string, form *content.FormNode) error
	Delete(tenantID, id string) error
}

type MediaSectionRepository interface {
	FindByID(tenantID, id string) (*content.MediaSectionNode, error)
	FindByPage(tenantID, pageID string) ([]*content.MediaSectionNode, error)
	FindAll(tenantID string) ([]*content.MediaSectionNode, error)
	Store(tenantID string, section *content.MediaSectionNode) error
	Update(tenantID string, section *content.MediaSectionNode) error
	ReplaceOrder(tenantID, pageID string, ordered []*content.MediaSectionNode) error
	Delete(tenantID, id string) error
}

type SeoRepository interface {
	Find(tenantID string) (*content.SeoNode, error)
	Replace(tenantID string, seo *content.SeoNode) error
}
