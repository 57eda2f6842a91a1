package services

import (
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/repositories"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/security"
)

// FormService orchestrates form operations. Form fields are embedded in
// the form record and replaced wholesale on every update.
type FormService struct {
	formRepo repositories.FormRepository
}

// NewFormService creates a new form application service
func NewFormService(formRepo repositories.FormRepository) *FormService {
	return &FormService{
		formRepo: formRepo,
	}
}

// GetAll returns all forms for a tenant (cache-first)
func (s *FormService) GetAll(tenantID string) ([]*content.FormNode, error) {
	forms, err := s.formRepo.FindAll(tenantID)
	if err != nil {
		return nil, apperrors.NewStoreError("form list", err)
	}
	return forms, nil
}

// GetByID returns a form by ID (cache-first)
func (s *FormService) GetByID(tenantID, id string) (*content.FormNode, error) {
	form, err := s.formRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, apperrors.NewStoreError("form lookup", err)
	}
	if form == nil {
		return nil, apperrors.NewNotFoundError("form", id)
	}
	return form, nil
}

// GetBySlug resolves a form by its public slug.
func (s *FormService) GetBySlug(tenantID, slug string) (*content.FormNode, error) {
	form, err := s.formRepo.FindBySlug(tenantID, slug)
	if err != nil {
		return nil, apperrors.NewStoreError("form lookup by slug", err)
	}
	if form == nil {
		return nil, apperrors.NewNotFoundError("form", slug)
	}
	return form, nil
}

// Create validates a draft, enforces slug uniqueness, assigns identity
// to the form and any fields missing one, and persists the new form.
func (s *FormService) Create(tenantID string, draft *content.FormDraft) (*content.FormNode, error) {
	form, problems := draft.Validate()
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	if err := s.checkSlug(tenantID, form.Slug, ""); err != nil {
		return nil, err
	}

	form.ID = security.GenerateULID()
	form.Created = time.Now().UTC()
	assignFieldIDs(form.Fields)

	if err := s.formRepo.Store(tenantID, form); err != nil {
		return nil, apperrors.NewStoreError("form create", err)
	}
	return form, nil
}

// Update replaces the full form record, embedded fields included.
// Submitted field IDs are preserved so edits keep their identity; new
// fields get fresh IDs.
func (s *FormService) Update(tenantID, id string, draft *content.FormDraft) (*content.FormNode, error) {
	form, problems := draft.Validate()
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	existing, err := s.formRepo.FindByID(tenantID, id)
	if err != nil {
		return nil, apperrors.NewStoreError("form update", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("form", id)
	}

	if err := s.checkSlug(tenantID, form.Slug, id); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	form.ID = id
	form.Created = existing.Created
	form.Changed = &now
	assignFieldIDs(form.Fields)

	if err := s.formRepo.Update(tenantID, form); err != nil {
		return nil, apperrors.NewStoreError("form update", err)
	}
	return form, nil
}

// Delete removes a form.
func (s *FormService) Delete(tenantID, id string) error {
	existing, err := s.formRepo.FindByID(tenantID, id)
	if err != nil {
		return apperrors.NewStoreError("form delete", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError("form", id)
	}

	if err := s.formRepo.Delete(tenantID, id); err != nil {
		return apperrors.NewStoreError("form delete", err)
	}
	return nil
}

// checkSlug rejects a slug already claimed by a different form.
func (s *FormService) checkSlug(tenantID, slug, selfID string) error {
	other, err := s.formRepo.FindBySlug(tenantID, slug)
	if err != nil {
		return apperrors.NewStoreError("form slug check", err)
	}
	if other != nil && other.ID != selfID {
		return apperrors.NewValidationError(apperrors.FieldError{
			Field:   "slug",
			Message: "already in use by another form",
		})
	}
	return nil
}

func assignFieldIDs(fields []*content.FormField) {
	for _, f := range fields {
		if f.ID == "" {
			f.ID = security.GenerateULID()
		}
	}
}
