package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
)

func contactFormDraft(slug string) *content.FormDraft {
	return &content.FormDraft{
		Title:       "Contact",
		Slug:        slug,
		NotifyEmail: "owner@example.com",
		IsActive:    true,
		Fields: []content.FormFieldDraft{
			{Label: "Name", Name: "name", FieldType: "text", Required: true},
			{Label: "Email", Name: "email", FieldType: "email", Required: true},
			{Label: "Topic", Name: "topic", FieldType: "select", Options: []string{"sales", "support"}},
			{Label: "Message", Name: "message", FieldType: "textarea", Required: true},
		},
	}
}

func TestFormServiceCreateAssignsFieldIDs(t *testing.T) {
	svc := NewFormService(newFakeFormRepo())

	form, err := svc.Create(testTenant, contactFormDraft("contact"))
	require.NoError(t, err)

	assert.NotEmpty(t, form.ID)
	require.Len(t, form.Fields, 4)
	seen := make(map[string]bool)
	for i, f := range form.Fields {
		assert.NotEmpty(t, f.ID)
		assert.False(t, seen[f.ID], "field ids must be unique")
		seen[f.ID] = true
		assert.Equal(t, i, f.SortOrder)
	}
}

func TestFormServiceSlugUniqueness(t *testing.T) {
	svc := NewFormService(newFakeFormRepo())

	_, err := svc.Create(testTenant, contactFormDraft("contact"))
	require.NoError(t, err)

	_, err = svc.Create(testTenant, contactFormDraft("contact"))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	fields := apperrors.FieldsOf(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "slug", fields[0].Field)
}

func TestFormServiceUpdateKeepsOwnSlug(t *testing.T) {
	svc := NewFormService(newFakeFormRepo())

	form, err := svc.Create(testTenant, contactFormDraft("contact"))
	require.NoError(t, err)

	updated, err := svc.Update(testTenant, form.ID, contactFormDraft("contact"))
	require.NoError(t, err, "a form may keep its own slug on update")
	assert.Equal(t, form.ID, updated.ID)
	require.NotNil(t, updated.Changed)
}

func TestFormServiceUpdateRejectsTakenSlug(t *testing.T) {
	svc := NewFormService(newFakeFormRepo())

	_, err := svc.Create(testTenant, contactFormDraft("contact"))
	require.NoError(t, err)
	other, err := svc.Create(testTenant, contactFormDraft("quote"))
	require.NoError(t, err)

	_, err = svc.Update(testTenant, other.ID, contactFormDraft("contact"))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFormServiceUpdateReplacesFieldsWholesale(t *testing.T) {
	svc := NewFormService(newFakeFormRepo())

	form, err := svc.Create(testTenant, contactFormDraft("contact"))
	require.NoError(t, err)
	keptID := form.Fields[0].ID

	draft := &content.FormDraft{
		Title:       "Contact",
		Slug:        "contact",
		NotifyEmail: "owner@example.com",
		IsActive:    true,
		Fields: []content.FormFieldDraft{
			{ID: keptID, Label: "Full name", Name: "name", FieldType: "text", Required: true},
			{Label: "Company", Name: "company", FieldType: "text"},
		},
	}

	updated, err := svc.Update(testTenant, form.ID, draft)
	require.NoError(t, err)
	require.Len(t, updated.Fields, 2)
	assert.Equal(t, keptID, updated.Fields[0].ID, "existing field ids survive an edit")
	assert.NotEmpty(t, updated.Fields[1].ID, "new fields get fresh ids")
	assert.NotEqual(t, keptID, updated.Fields[1].ID)
}

func TestFormServiceGetBySlugUnknown(t *testing.T) {
	svc := NewFormService(newFakeFormRepo())

	_, err := svc.GetBySlug(testTenant, "nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
