package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
)

func TestCtaServiceCreateScopesSortOrderPerHeader(t *testing.T) {
	repo := newFakeCtaRepo()
	svc := NewCtaService(repo)

	first, err := svc.Create(testTenant, &content.CtaDraft{HeaderID: "header-main", Label: "Sign up", URL: "/signup", Style: "primary", IsVisible: true})
	require.NoError(t, err)
	second, err := svc.Create(testTenant, &content.CtaDraft{HeaderID: "header-main", Label: "Log in", URL: "/login", Style: "ghost"})
	require.NoError(t, err)
	other, err := svc.Create(testTenant, &content.CtaDraft{HeaderID: "header-footer", Label: "Contact", URL: "/contact", Style: "secondary"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 0, first.SortOrder)
	assert.Equal(t, 1, second.SortOrder)
	assert.Equal(t, 0, other.SortOrder, "each header starts its own sequence")
}

func TestCtaServiceCreateRejectsUnknownStyle(t *testing.T) {
	svc := NewCtaService(newFakeCtaRepo())

	_, err := svc.Create(testTenant, &content.CtaDraft{HeaderID: "header-main", Label: "Sign up", URL: "/signup", Style: "flashy"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	fields := apperrors.FieldsOf(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "style", fields[0].Field)
}

func TestCtaServiceReorderRejectsDuplicateID(t *testing.T) {
	repo := newFakeCtaRepo()
	svc := NewCtaService(repo)

	a, err := svc.Create(testTenant, &content.CtaDraft{HeaderID: "header-main", Label: "A", URL: "/a", Style: "primary"})
	require.NoError(t, err)
	_, err = svc.Create(testTenant, &content.CtaDraft{HeaderID: "header-main", Label: "B", URL: "/b", Style: "primary"})
	require.NoError(t, err)

	_, err = svc.Reorder(testTenant, "header-main", []string{a.ID, a.ID})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestCtaServiceReorderRenumbersDensely(t *testing.T) {
	repo := newFakeCtaRepo()
	svc := NewCtaService(repo)

	a, err := svc.Create(testTenant, &content.CtaDraft{HeaderID: "header-main", Label: "A", URL: "/a", Style: "primary"})
	require.NoError(t, err)
	b, err := svc.Create(testTenant, &content.CtaDraft{HeaderID: "header-main", Label: "B", URL: "/b", Style: "primary"})
	require.NoError(t, err)

	reordered, err := svc.Reorder(testTenant, "header-main", []string{b.ID, a.ID})
	require.NoError(t, err)
	require.Len(t, reordered, 2)
	assert.Equal(t, b.ID, reordered[0].ID)
	assert.Equal(t, 0, reordered[0].SortOrder)
	assert.Equal(t, 1, reordered[1].SortOrder)
}
