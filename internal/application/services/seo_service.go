package services

import (
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/repositories"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/security"
)

// SeoService manages the single seo settings record each tenant keeps.
type SeoService struct {
	seoRepo repositories.SeoRepository
}

// NewSeoService creates a new seo application service
func NewSeoService(seoRepo repositories.SeoRepository) *SeoService {
	return &SeoService{
		seoRepo: seoRepo,
	}
}

// Get returns the tenant's seo settings. A tenant that has never saved
// settings gets the primed defaults rather than a miss.
func (s *SeoService) Get(tenantID string) (*content.SeoNode, error) {
	seo, err := s.seoRepo.Find(tenantID)
	if err != nil {
		return nil, apperrors.NewStoreError("seo lookup", err)
	}
	if seo == nil {
		return &content.SeoNode{
			NodeType: "Seo",
			Title:    "My Site",
			Robots:   "index,follow",
		}, nil
	}
	return seo, nil
}

// Put validates and replaces the full settings record.
func (s *SeoService) Put(tenantID string, draft *content.SeoDraft) (*content.SeoNode, error) {
	seo, problems := draft.Validate()
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	existing, err := s.seoRepo.Find(tenantID)
	if err != nil {
		return nil, apperrors.NewStoreError("seo replace", err)
	}

	if existing != nil {
		seo.ID = existing.ID
	} else {
		seo.ID = security.GenerateULID()
	}
	now := time.Now().UTC()
	seo.Changed = &now

	if err := s.seoRepo.Replace(tenantID, seo); err != nil {
		return nil, apperrors.NewStoreError("seo replace", err)
	}
	return seo, nil
}
