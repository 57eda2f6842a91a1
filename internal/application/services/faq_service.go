package services

import (
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/ordering"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/repositories"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/security"
)

// FaqService orchestrates faq operations with cache-first repository pattern
type FaqService struct {
	faqRepo repositories.FaqRepository
}

// NewFaqService creates a new faq application service
func NewFaqService(faqRepo repositories.FaqRepository) *FaqService {
	return &FaqService{
		faqRepo: faqRepo,
	}
}

// GetAll returns all faqs for a tenant (cache-first)
func (s *FaqService) GetAll(tenantID string) ([]*content.FaqNode, error) {
	faqs, err := s.faqRepo.FindAll(tenantID)
	if err != nil {
		return nil, apperrors.NewStoreError("faq list", err)
	}
	return faqs, nil
}

// GetByCategory returns the faqs in one category ordered by sortOrder
func (s *FaqService) GetByCategory(tenantID, categoryID string) ([]*content.FaqNode, error) {
	faqs, err := s.faqRepo.FindByCategory(tenantID, categoryID)
	if err != nil {
		return nil, apperrors.NewStoreError("faq list by category", err)
	}
	return faqs, nil
}

// GetByID returns an faq by ID (cache-first)
func (s *FaqService) GetByID(tenantID, id string) (*content.FaqNode, error) {
	faq, err := s.faqRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, apperrors.NewStoreError("faq lookup", err)
	}
	if faq == nil {
		return nil, apperrors.NewNotFoundError("faq", id)
	}
	return faq, nil
}

// Create validates a draft, assigns identity and the next sortOrder in
// its category, and persists the new faq.
func (s *FaqService) Create(tenantID string, draft *content.FaqDraft) (*content.FaqNode, error) {
	faq, problems := draft.Validate()
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	siblings, err := s.faqRepo.FindByCategory(tenantID, faq.CategoryID)
	if err != nil {
		return nil, apperrors.NewStoreError("faq create", err)
	}

	faq.ID = security.GenerateULID()
	faq.SortOrder = ordering.NextSortOrder(siblings)

	if err := s.faqRepo.Store(tenantID, faq); err != nil {
		return nil, apperrors.NewStoreError("faq create", err)
	}
	return faq, nil
}

// Update replaces the full record for an existing faq.
func (s *FaqService) Update(tenantID, id string, draft *content.FaqDraft) (*content.FaqNode, error) {
	faq, problems := draft.Validate()
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	existing, err := s.faqRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, apperrors.NewStoreError("faq update", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("faq", id)
	}

	faq.ID = id
	faq.SortOrder = existing.SortOrder

	if err := s.faqRepo.Update(tenantID, faq); err != nil {
		return nil, apperrors.NewStoreError("faq update", err)
	}
	return faq, nil
}

// Delete removes an faq without renumbering its former siblings.
func (s *FaqService) Delete(tenantID, id string) error {
	existing, err := s.faqRepo.FindByID(tenantID, id)
	if err != nil {
		return apperrors.NewStoreError("faq delete", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("faq", id)
	}

	if err := s.faqRepo.Delete(tenantID, id); err != nil {
		return apperrors.NewStoreError("faq delete", err)
	}
	return nil
}

// Reorder applies a client-submitted order to one category's faqs and
// persists the dense renumbering in one transaction.
func (s *FaqService) Reorder(tenantID, categoryID string, orderedIDs []string) ([]*content.FaqNode, error) {
	current, err := s.faqRepo.FindByCategory(tenantID, categoryID)
	if err != nil {
		return nil, apperrors.NewStoreError("faq reorder", err)
	}

	ordered, err := ordering.ApplyOrder("faq", current, orderedIDs)
	if err != nil {
		return nil, err
	}

	if err := s.faqRepo.ReplaceOrder(tenantID, categoryID, ordered); err != nil {
		return nil, apperrors.NewStoreError("faq reorder", err)
	}
	return ordered, nil
}
