package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
)

const testTenant = "default"

func TestHeroServiceCreateAssignsIdentityAndSortOrder(t *testing.T) {
	repo := newFakeHeroRepo()
	svc := NewHeroService(repo)

	first, err := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "Welcome", IsVisible: true})
	require.NoError(t, err)
	second, err := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "Pricing"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 0, first.SortOrder)
	assert.Equal(t, 1, second.SortOrder)
	assert.False(t, first.Created.IsZero())
}

func TestHeroServiceCreateScopesSortOrderPerPage(t *testing.T) {
	repo := newFakeHeroRepo()
	svc := NewHeroService(repo)

	_, err := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "Welcome"})
	require.NoError(t, err)
	other, err := svc.Create(testTenant, &content.HeroDraft{PageID: "page-2", Title: "About"})
	require.NoError(t, err)

	assert.Equal(t, 0, other.SortOrder, "each page starts its own sequence")
}

func TestHeroServiceCreateRejectsInvalidDraft(t *testing.T) {
	svc := NewHeroService(newFakeHeroRepo())

	_, err := svc.Create(testTenant, &content.HeroDraft{PageID: "", Title: ""})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	fields := apperrors.FieldsOf(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "pageId", fields[0].Field)
}

func TestHeroServiceGetByIDUnknown(t *testing.T) {
	svc := NewHeroService(newFakeHeroRepo())

	_, err := svc.GetByID(testTenant, "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestHeroServiceUpdateUnknownID(t *testing.T) {
	svc := NewHeroService(newFakeHeroRepo())

	_, err := svc.Update(testTenant, "missing", &content.HeroDraft{PageID: "page-1", Title: "Welcome"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestHeroServiceUpdateCarriesSortOrderAndCreated(t *testing.T) {
	repo := newFakeHeroRepo()
	svc := NewHeroService(repo)

	created, err := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "Welcome"})
	require.NoError(t, err)

	updated, err := svc.Update(testTenant, created.ID, &content.HeroDraft{PageID: "page-1", Title: "Welcome back"})
	require.NoError(t, err)

	assert.Equal(t, created.SortOrder, updated.SortOrder)
	assert.Equal(t, created.Created, updated.Created)
	require.NotNil(t, updated.Changed)
}

func TestHeroServiceDeleteTwice(t *testing.T) {
	repo := newFakeHeroRepo()
	svc := NewHeroService(repo)

	created, err := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "Welcome"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(testTenant, created.ID))
	err = svc.Delete(testTenant, created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestHeroServiceDeleteLeavesSiblingGaps(t *testing.T) {
	repo := newFakeHeroRepo()
	svc := NewHeroService(repo)

	a, _ := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "A"})
	b, _ := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "B"})
	c, _ := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "C"})

	require.NoError(t, svc.Delete(testTenant, b.ID))

	remaining, err := svc.GetByPage(testTenant, "page-1")
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, a.ID, remaining[0].ID)
	assert.Equal(t, 0, remaining[0].SortOrder)
	assert.Equal(t, c.ID, remaining[1].ID)
	assert.Equal(t, 2, remaining[1].SortOrder, "sibling sortOrder is untouched until the next reorder")
}

func TestHeroServiceReorderRenumbersDensely(t *testing.T) {
	repo := newFakeHeroRepo()
	svc := NewHeroService(repo)

	a, _ := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "A"})
	b, _ := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "B"})
	c, _ := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "C"})

	ordered, err := svc.Reorder(testTenant, "page-1", []string{c.ID, a.ID, b.ID})
	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Equal(t, c.ID, ordered[0].ID)
	assert.Equal(t, 0, ordered[0].SortOrder)
	assert.Equal(t, a.ID, ordered[1].ID)
	assert.Equal(t, 1, ordered[1].SortOrder)
	assert.Equal(t, b.ID, ordered[2].ID)
	assert.Equal(t, 2, ordered[2].SortOrder)
	require.NotNil(t, ordered[0].Changed)
}

func TestHeroServiceReorderClosesDeleteGaps(t *testing.T) {
	repo := newFakeHeroRepo()
	svc := NewHeroService(repo)

	a, _ := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "A"})
	b, _ := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "B"})
	c, _ := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "C"})
	require.NoError(t, svc.Delete(testTenant, a.ID))

	ordered, err := svc.Reorder(testTenant, "page-1", []string{c.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, ordered[0].SortOrder)
	assert.Equal(t, 1, ordered[1].SortOrder)
}

func TestHeroServiceReorderStaleView(t *testing.T) {
	repo := newFakeHeroRepo()
	svc := NewHeroService(repo)

	a, _ := svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "A"})
	_, _ = svc.Create(testTenant, &content.HeroDraft{PageID: "page-1", Title: "B"})

	_, err := svc.Reorder(testTenant, "page-1", []string{a.ID})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err), "size mismatch means the client saw a stale collection")

	_, err = svc.Reorder(testTenant, "page-1", []string{a.ID, "never-existed"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	_, err = svc.Reorder(testTenant, "page-1", []string{a.ID, a.ID})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}
