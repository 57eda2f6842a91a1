package services

import (
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/ordering"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/repositories"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/security"
)

// MediaSectionService orchestrates media section operations with cache-first repository pattern
type MediaSectionService struct {
	sectionRepo repositories.MediaSectionRepository
}

// NewMediaSectionService creates a new media section application service
func NewMediaSectionService(sectionRepo repositories.MediaSectionRepository) *MediaSectionService {
	return &MediaSectionService{
		sectionRepo: sectionRepo,
	}
}

// GetAll returns all media sections for a tenant (cache-first)
func (s *MediaSectionService) GetAll(tenantID string) ([]*content.MediaSectionNode, error) {
	sections, err := s.sectionRepo.FindAll(tenantID)
	if err != nil {
		return nil, apperrors.NewStoreError("media section list", err)
	}
	return sections, nil
}

// GetByPage returns the media sections for one page ordered by sortOrder
func (s *MediaSectionService) GetByPage(tenantID, pageID string) ([]*content.MediaSectionNode, error) {
	sections, err := s.sectionRepo.FindByPage(tenantID, pageID)
	if err != nil {
		return nil, apperrors.NewStoreError("media section list by page", err)
	}
	return sections, nil
}

// GetByID returns a media section by ID (cache-first)
func (s *MediaSectionService) GetByID(tenantID, id string) (*content.MediaSectionNode, error) {
	section, err := s.sectionRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, apperrors.NewStoreError("media section lookup", err)
	}
	if section == nil {
		return nil, apperrors.NewNotFoundError("media section", id)
	}
	return section, nil
}

// Create validates a draft, assigns identity and the next sortOrder in
// its page collection, and persists the new media section.
func (s *MediaSectionService) Create(tenantID string, draft *content.MediaSectionDraft) (*content.MediaSectionNode, error) {
	section, problems := draft.Validate()
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	siblings, err := s.sectionRepo.FindByPage(tenantID, section.PageID)
	if err != nil {
		return nil, apperrors.NewStoreError("media section create", err)
	}

	section.ID = security.GenerateULID()
	section.SortOrder = ordering.NextSortOrder(siblings)

	if err := s.sectionRepo.Store(tenantID, section); err != nil {
		return nil, apperrors.NewStoreError("media section create", err)
	}
	return section, nil
}

// Update replaces the full record for an existing media section.
func (s *MediaSectionService) Update(tenantID, id string, draft *content.MediaSectionDraft) (*content.MediaSectionNode, error) {
	section, problems := draft.Validate()
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	existing, err := s.sectionRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, apperrors.NewStoreError("media section update", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("media section", id)
	}

	section.ID = id
	section.SortOrder = existing.SortOrder

	if err := s.sectionRepo.Update(tenantID, section); err != nil {
		return nil, apperrors.NewStoreError("media section update", err)
	}
	return section, nil
}

// Delete removes a media section without renumbering its former siblings.
func (s *MediaSectionService) Delete(tenantID, id string) error {
	existing, err := s.sectionRepo.FindByID(tenantID, id)
	if err != nil {
		return apperrors.NewStoreError("media section delete", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("media section", id)
	}

	if err := s.sectionRepo.Delete(tenantID, id); err != nil {
		return apperrors.NewStoreError("media section delete", err)
	}
	return nil
}

// Reorder applies a client-submitted order to one page's media sections
// and persists the dense renumbering in one transaction.
func (s *MediaSectionService) Reorder(tenantID, pageID string, orderedIDs []string) ([]*content.MediaSectionNode, error) {
	current, err := s.sectionRepo.FindByPage(tenantID, pageID)
	if err != nil {
		return nil, apperrors.NewStoreError("media section reorder", err)
	}

	ordered, err := ordering.ApplyOrder("media section", current, orderedIDs)
	if err != nil {
		return nil, err
	}

	if err := s.sectionRepo.ReplaceOrder(tenantID, pageID, ordered); err != nil {
		return nil, apperrors.NewStoreError("media section reorder", err)
	}
	return ordered, nil
}
