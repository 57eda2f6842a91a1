package services

import (
	"sort"
	"strings"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/repositories"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/email"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/email/templates"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
)

// FormSubmissionService validates public submissions against a form's
// field definitions and relays them by email. Submissions are not
// persisted; the notification is the delivery.
type FormSubmissionService struct {
	formRepo repositories.FormRepository
	emailSvc email.Service
	logger   *logging.ChanneledLogger
}

// NewFormSubmissionService creates a new form submission service
func NewFormSubmissionService(formRepo repositories.FormRepository, emailSvc email.Service, logger *logging.ChanneledLogger) *FormSubmissionService {
	return &FormSubmissionService{
		formRepo: formRepo,
		emailSvc: emailSvc,
		logger:   logger,
	}
}

// Submit validates values against the form's fields and emails the
// submission to the form's notify address.
func (s *FormSubmissionService) Submit(tenantID, formID string, values map[string]string) (*content.FormSubmission, error) {
	form, err := s.formRepo.FindByID(tenantID, formID)
	if err != nil {
		return nil, apperrors.NewStoreError("form submission", err)
	}
	if form == nil || !form.IsActive {
		return nil, apperrors.NewNotFoundError("form", formID)
	}

	if problems := validateSubmission(form, values); len(problems) > 0 {
		return nil, apperrors.NewValidationError(problems...)
	}

	submission := &content.FormSubmission{
		FormID:      form.ID,
		Values:      values,
		SubmittedAt: time.Now().UTC(),
	}

	if s.emailSvc != nil && form.NotifyEmail != "" {
		emailValues := submissionEmailValues(form, values)
		submittedAt := submission.SubmittedAt.Format(time.RFC1123)
		if err := s.emailSvc.SendFormSubmissionEmail(form.NotifyEmail, form.Title, submittedAt, emailValues); err != nil {
			s.logger.Email().Error("Submission notification failed", "error", err.Error(), "formId", form.ID, "tenantId", tenantID)
			return nil, apperrors.NewStoreError("submission notification", err)
		}
		s.logger.Email().Info("Submission notification sent", "formId", form.ID, "tenantId", tenantID)
	}

	return submission, nil
}

// validateSubmission checks required fields, rejects unknown names, and
// enforces per-type constraints.
func validateSubmission(form *content.FormNode, values map[string]string) []apperrors.FieldError {
	var problems []apperrors.FieldError

	known := make(map[string]*content.FormField, len(form.Fields))
	for _, f := range form.Fields {
		known[f.Name] = f
	}

	for name := range values {
		if _, ok := known[name]; !ok {
			problems = append(problems, apperrors.FieldError{Field: name, Message: "unknown field"})
		}
	}

	for _, f := range form.Fields {
		value, present := values[f.Name]
		trimmed := strings.TrimSpace(value)

		if f.Required && (!present || trimmed == "") {
			problems = append(problems, apperrors.FieldError{Field: f.Name, Message: "required"})
			continue
		}
		if !present || trimmed == "" {
			continue
		}

		switch f.FieldType {
		case content.FieldTypeEmail:
			if !strings.Contains(trimmed, "@") {
				problems = append(problems, apperrors.FieldError{Field: f.Name, Message: "must be an email address"})
			}
		case content.FieldTypeSelect:
			valid := false
			for _, opt := range f.Options {
				if opt == trimmed {
					valid = true
					break
				}
			}
			if !valid {
				problems = append(problems, apperrors.FieldError{Field: f.Name, Message: "not one of the allowed options"})
			}
		case content.FieldTypeCheckbox:
			if trimmed != "true" && trimmed != "false" {
				problems = append(problems, apperrors.FieldError{Field: f.Name, Message: "must be true or false"})
			}
		}
	}

	sort.Slice(problems, func(i, j int) bool { return problems[i].Field < problems[j].Field })
	return problems
}

// submissionEmailValues pairs answered values with their field labels
// in the form's display order.
func submissionEmailValues(form *content.FormNode, values map[string]string) []templates.SubmissionValue {
	out := make([]templates.SubmissionValue, 0, len(form.Fields))
	for _, f := range form.Fields {
		if value, ok := values[f.Name]; ok && strings.TrimSpace(value) != "" {
			out = append(out, templates.SubmissionValue{Label: f.Label, Value: value})
		}
	}
	return out
}
