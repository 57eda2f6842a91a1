package services

import (
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/repositories"
)

// ContentMapService assembles the full inventory of a tenant's content
// nodes for editor navigation. Items carry identity and linkage only;
// clients load full records through the per-resource endpoints.
type ContentMapService struct {
	heroRepo    repositories.HeroRepository
	faqRepo     repositories.FaqRepository
	ctaRepo     repositories.CtaRepository
	formRepo    repositories.FormRepository
	sectionRepo repositories.MediaSectionRepository
}

// NewContentMapService creates a new content map application service
func NewContentMapService(
	heroRepo repositories.HeroRepository,
	faqRepo repositories.FaqRepository,
	ctaRepo repositories.CtaRepository,
	formRepo repositories.FormRepository,
	sectionRepo repositories.MediaSectionRepository,
) *ContentMapService {
	return &ContentMapService{
		heroRepo:    heroRepo,
		faqRepo:     faqRepo,
		ctaRepo:     ctaRepo,
		formRepo:    formRepo,
		sectionRepo: sectionRepo,
	}
}

// BuildMap returns one item per content node, grouped by type in a
// stable order: heroes, faqs, ctas, forms, media sections.
func (s *ContentMapService) BuildMap(tenantID string) ([]*content.ContentMapItem, error) {
	items := make([]*content.ContentMapItem, 0, 32)

	heroes, err := s.heroRepo.FindAll(tenantID)
	if err != nil {
		return nil, apperrors.NewStoreError("content map heroes", err)
	}
	for _, hero := range heroes {
		items = append(items, &content.ContentMapItem{
			ID:       hero.ID,
			Type:     "Hero",
			Title:    hero.Title,
			ParentID: hero.PageID,
		})
	}

	faqs, err := s.faqRepo.FindAll(tenantID)
	if err != nil {
		return nil, apperrors.NewStoreError("content map faqs", err)
	}
	for _, faq := range faqs {
		items = append(items, &content.ContentMapItem{
			ID:       faq.ID,
			Type:     "Faq",
			Title:    faq.Question,
			ParentID: faq.CategoryID,
		})
	}

	ctas, err := s.ctaRepo.FindAll(tenantID)
	if err != nil {
		return nil, apperrors.NewStoreError("content map ctas", err)
	}
	for _, cta := range ctas {
		items = append(items, &content.ContentMapItem{
			ID:       cta.ID,
			Type:     "Cta",
			Title:    cta.Label,
			ParentID: cta.HeaderID,
		})
	}

	forms, err := s.formRepo.FindAll(tenantID)
	if err != nil {
		return nil, apperrors.NewStoreError("content map forms", err)
	}
	for _, form := range forms {
		items = append(items, &content.ContentMapItem{
			ID:    form.ID,
			Type:  "Form",
			Title: form.Title,
			Slug:  form.Slug,
		})
	}

	sections, err := s.sectionRepo.FindAll(tenantID)
	if err != nil {
		return nil, apperrors.NewStoreError("content map media sections", err)
	}
	for _, section := range sections {
		items = append(items, &content.ContentMapItem{
			ID:       section.ID,
			Type:     "MediaSection",
			Title:    section.Title,
			ParentID: section.PageID,
		})
	}

	return items, nil
}
