package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
)

func TestFaqServiceCreateScopesSortOrderPerCategory(t *testing.T) {
	repo := newFakeFaqRepo()
	svc := NewFaqService(repo)

	first, err := svc.Create(testTenant, &content.FaqDraft{CategoryID: "cat-billing", Question: "How do I pay?", Answer: "By card.", IsVisible: true})
	require.NoError(t, err)
	second, err := svc.Create(testTenant, &content.FaqDraft{CategoryID: "cat-billing", Question: "Do you refund?", Answer: "Within 30 days."})
	require.NoError(t, err)
	other, err := svc.Create(testTenant, &content.FaqDraft{CategoryID: "cat-shipping", Question: "How long?", Answer: "Two days."})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 0, first.SortOrder)
	assert.Equal(t, 1, second.SortOrder)
	assert.Equal(t, 0, other.SortOrder, "each category starts its own sequence")
}

func TestFaqServiceCreateRejectsInvalidDraft(t *testing.T) {
	svc := NewFaqService(newFakeFaqRepo())

	_, err := svc.Create(testTenant, &content.FaqDraft{CategoryID: "cat-billing", Question: "", Answer: ""})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	require.Len(t, apperrors.FieldsOf(err), 2)
}

func TestFaqServiceReorderRenumbersDensely(t *testing.T) {
	repo := newFakeFaqRepo()
	svc := NewFaqService(repo)

	a, err := svc.Create(testTenant, &content.FaqDraft{CategoryID: "cat-billing", Question: "A?", Answer: "A."})
	require.NoError(t, err)
	b, err := svc.Create(testTenant, &content.FaqDraft{CategoryID: "cat-billing", Question: "B?", Answer: "B."})
	require.NoError(t, err)

	reordered, err := svc.Reorder(testTenant, "cat-billing", []string{b.ID, a.ID})
	require.NoError(t, err)
	require.Len(t, reordered, 2)
	assert.Equal(t, b.ID, reordered[0].ID)
	assert.Equal(t, 0, reordered[0].SortOrder)
	assert.Equal(t, a.ID, reordered[1].ID)
	assert.Equal(t, 1, reordered[1].SortOrder)
}

func TestFaqServiceReorderRejectsStaleList(t *testing.T) {
	repo := newFakeFaqRepo()
	svc := NewFaqService(repo)

	a, err := svc.Create(testTenant, &content.FaqDraft{CategoryID: "cat-billing", Question: "A?", Answer: "A."})
	require.NoError(t, err)
	_, err = svc.Create(testTenant, &content.FaqDraft{CategoryID: "cat-billing", Question: "B?", Answer: "B."})
	require.NoError(t, err)

	_, err = svc.Reorder(testTenant, "cat-billing", []string{a.ID})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	_, err = svc.Reorder(testTenant, "cat-billing", []string{a.ID, "no-such-faq"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}
