package services

import (
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/ordering"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/repositories"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/security"
)

// CtaService orchestrates call-to-action operations with cache-first repository pattern
type CtaService struct {
	ctaRepo repositories.CtaRepository
}

// NewCtaService creates a new cta application service
func NewCtaService(ctaRepo repositories.CtaRepository) *CtaService {
	return &CtaService{
		ctaRepo: ctaRepo,
	}
}

// GetAll returns all ctas for a tenant (cache-first)
func (s *CtaService) GetAll(tenantID string) ([]*content.CtaNode, error) {
	ctas, err := s.ctaRepo.FindAll(tenantID)
	if err != nil {
		return nil, apperrors.NewStoreError("cta list", err)
	}
	return ctas, nil
}

// GetByHeader returns the ctas for one header ordered by sortOrder
func (s *CtaService) GetByHeader(tenantID, headerID string) ([]*content.CtaNode, error) {
	ctas, err := s.ctaRepo.FindByHeader(tenantID, headerID)
	if err != nil {
		return nil, apperrors.NewStoreError("cta list by header", err)
	}
	return ctas, nil
}

// GetByID returns a cta by ID (cache-first)
func (s *CtaService) GetByID(tenantID, id string) (*content.CtaNode, error) {
	cta, err := s.ctaRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, apperrors.NewStoreError("cta lookup", err)
	}
	if cta == nil {
		return nil, apperrors.NewNotFoundError("cta", id)
	}
	return cta, nil
}

// Create validates a draft, assigns identity and the next sortOrder in
// its header collection, and persists the new cta.
func (s *CtaService) Create(tenantID string, draft *content.CtaDraft) (*content.CtaNode, error) {
	cta, problems := draft.Validate()
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	siblings, err := s.ctaRepo.FindByHeader(tenantID, cta.HeaderID)
	if err != nil {
		return nil, apperrors.NewStoreError("cta create", err)
	}

	cta.ID = security.GenerateULID()
	cta.SortOrder = ordering.NextSortOrder(siblings)

	if err := s.ctaRepo.Store(tenantID, cta); err != nil {
		return nil, apperrors.NewStoreError("cta create", err)
	}
	return cta, nil
}

// Update replaces the full record for an existing cta.
func (s *CtaService) Update(tenantID, id string, draft *content.CtaDraft) (*content.CtaNode, error) {
	cta, problems := draft.Validate()
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	existing, err := s.ctaRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, apperrors.NewStoreError("cta update", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("cta", id)
	}

	cta.ID = id
	cta.SortOrder = existing.SortOrder

	if err := s.ctaRepo.Update(tenantID, cta); err != nil {
		return nil, apperrors.NewStoreError("cta update", err)
	}
	return cta, nil
}

// Delete removes a cta without renumbering its former siblings.
func (s *CtaService) Delete(tenantID, id string) error {
	existing, err := s.ctaRepo.FindByID(tenantID, id)
	if err != nil {
		return apperrors.NewStoreError("cta delete", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("cta", id)
	}

	if err := s.ctaRepo.Delete(tenantID, id); err != nil {
		return apperrors.NewStoreError("cta delete", err)
	}
	return nil
}

// Reorder applies a client-submitted order to one header's ctas and
// persists the dense renumbering in one transaction.
func (s *CtaService) Reorder(tenantID, headerID string, orderedIDs []string) ([]*content.CtaNode, error) {
	current, err := s.ctaRepo.FindByHeader(tenantID, headerID)
	if err != nil {
		return nil, apperrors.NewStoreError("cta reorder", err)
	}

	ordered, err := ordering.ApplyOrder("cta", current, orderedIDs)
	if err != nil {
		return nil, err
	}

	if err := s.ctaRepo.ReplaceOrder(tenantID, headerID, ordered); err != nil {
		return nil, apperrors.NewStoreError("cta reorder", err)
	}
	return ordered, nil
}
