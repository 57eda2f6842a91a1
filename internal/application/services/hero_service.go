// Package services provides application-level services that orchestrate
// business logic and coordinate between repositories and domain entities.
package services

import (
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/ordering"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/repositories"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/security"
)

// HeroService orchestrates hero operations with cache-first repository pattern
type HeroService struct {
	heroRepo repositories.HeroRepository
}

// NewHeroService creates a new hero application service
func NewHeroService(heroRepo repositories.HeroRepository) *HeroService {
	return &HeroService{
		heroRepo: heroRepo,
	}
}

// GetAll returns all heroes for a tenant (cache-first)
func (s *HeroService) GetAll(tenantID string) ([]*content.HeroNode, error) {
	heroes, err := s.heroRepo.FindAll(tenantID)
	if err != nil {
		return nil, apperrors.NewStoreError("hero list", err)
	}
	return heroes, nil
}

// GetByPage returns the heroes for one page ordered by sortOrder
func (s *HeroService) GetByPage(tenantID, pageID string) ([]*content.HeroNode, error) {
	heroes, err := s.heroRepo.FindByPage(tenantID, pageID)
	if err != nil {
		return nil, apperrors.NewStoreError("hero list by page", err)
	}
	return heroes, nil
}

// GetByID returns a hero by ID (cache-first)
func (s *HeroService) GetByID(tenantID, id string) (*content.HeroNode, error) {
	hero, err := s.heroRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, apperrors.NewStoreError("hero lookup", err)
	}
	if hero == nil {
		return nil, apperrors.NewNotFoundError("hero", id)
	}
	return hero, nil
}

// Create validates a draft, assigns identity and the next sortOrder in
// its page collection, and persists the new hero.
func (s *HeroService) Create(tenantID string, draft *content.HeroDraft) (*content.HeroNode, error) {
	hero, problems := draft.Validate()
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	siblings, err := s.heroRepo.FindByPage(tenantID, hero.PageID)
	if err != nil {
		return nil, apperrors.NewStoreError("hero create", err)
	}

	hero.ID = security.GenerateULID()
	hero.SortOrder = ordering.NextSortOrder(siblings)
	hero.Created = time.Now().UTC()

	if err := s.heroRepo.Store(tenantID, hero); err != nil {
		return nil, apperrors.NewStoreError("hero create", err)
	}
	return hero, nil
}

// Update replaces the full record for an existing hero. SortOrder and
// creation time carry over from the stored record.
func (s *HeroService) Update(tenantID, id string, draft *content.HeroDraft) (*content.HeroNode, error) {
	hero, problems := draft.Validate()
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	existing, err := s.heroRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, apperrors.NewStoreError("hero update", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("hero", id)
	}

	now := time.Now().UTC()
	hero.ID = id
	hero.SortOrder = existing.SortOrder
	hero.Created = existing.Created
	hero.Changed = &now

	if err := s.heroRepo.Update(tenantID, hero); err != nil {
		return nil, apperrors.NewStoreError("hero update", err)
	}
	return hero, nil
}

// Delete removes a hero. Remaining siblings keep their sortOrder values;
// gaps are closed by the next reorder.
func (s *HeroService) Delete(tenantID, id string) error {
	existing, err := s.heroRepo.FindByID(tenantID, id)
	if err != nil {
		return apperrors.NewStoreError("hero delete", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("hero", id)
	}

	if err := s.heroRepo.Delete(tenantID, id); err != nil {
		return apperrors.NewStoreError("hero delete", err)
	}
	return nil
}

// Reorder applies a client-submitted order to one page's hero
// collection and persists the dense renumbering in one transaction.
func (s *HeroService) Reorder(tenantID, pageID string, orderedIDs []string) ([]*content.HeroNode, error) {
	current, err := s.heroRepo.FindByPage(tenantID, pageID)
	if err != nil {
		return nil, apperrors.NewStoreError("hero reorder", err)
	}

	ordered, err := ordering.ApplyOrder("hero", current, orderedIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for _, hero := range ordered {
		hero.Changed = &now
	}

	if err := s.heroRepo.ReplaceOrder(tenantID, pageID, ordered); err != nil {
		return nil, apperrors.NewStoreError("hero reorder", err)
	}
	return ordered, nil
}

// validationError converts draft field problems to the shared taxonomy.
func validationError(problems []content.FieldProblem) error {
	fields := make([]apperrors.FieldError, len(problems))
	for i, p := range problems {
		fields[i] = apperrors.FieldError{Field: p.Field, Message: p.Message}
	}
	return apperrors.NewValidationError(fields...)
}
