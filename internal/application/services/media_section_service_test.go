package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
)

func TestMediaSectionServiceCreateScopesSortOrderPerPage(t *testing.T) {
	repo := newFakeMediaSectionRepo()
	svc := NewMediaSectionService(repo)

	first, err := svc.Create(testTenant, &content.MediaSectionDraft{PageID: "page-home", Title: "Gallery", MediaURL: "/img/gallery.jpg", MediaType: "image", IsVisible: true})
	require.NoError(t, err)
	second, err := svc.Create(testTenant, &content.MediaSectionDraft{PageID: "page-home", Title: "Tour", MediaURL: "/video/tour.mp4", MediaType: "video"})
	require.NoError(t, err)
	other, err := svc.Create(testTenant, &content.MediaSectionDraft{PageID: "page-about", Title: "Team", MediaURL: "/img/team.jpg", MediaType: "image"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 0, first.SortOrder)
	assert.Equal(t, 1, second.SortOrder)
	assert.Equal(t, 0, other.SortOrder, "each page starts its own sequence")
}

func TestMediaSectionServiceCreateRejectsUnknownMediaType(t *testing.T) {
	svc := NewMediaSectionService(newFakeMediaSectionRepo())

	_, err := svc.Create(testTenant, &content.MediaSectionDraft{PageID: "page-home", Title: "Gallery", MediaURL: "/img/gallery.jpg", MediaType: "hologram"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	fields := apperrors.FieldsOf(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "mediaType", fields[0].Field)
}

func TestMediaSectionServiceReorderRejectsStaleList(t *testing.T) {
	repo := newFakeMediaSectionRepo()
	svc := NewMediaSectionService(repo)

	a, err := svc.Create(testTenant, &content.MediaSectionDraft{PageID: "page-home", Title: "A", MediaURL: "/a.jpg", MediaType: "image"})
	require.NoError(t, err)
	_, err = svc.Create(testTenant, &content.MediaSectionDraft{PageID: "page-home", Title: "B", MediaURL: "/b.jpg", MediaType: "image"})
	require.NoError(t, err)

	_, err = svc.Reorder(testTenant, "page-home", []string{a.ID})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestMediaSectionServiceReorderRenumbersDensely(t *testing.T) {
	repo := newFakeMediaSectionRepo()
	svc := NewMediaSectionService(repo)

	a, err := svc.Create(testTenant, &content.MediaSectionDraft{PageID: "page-home", Title: "A", MediaURL: "/a.jpg", MediaType: "image"})
	require.NoError(t, err)
	b, err := svc.Create(testTenant, &content.MediaSectionDraft{PageID: "page-home", Title: "B", MediaURL: "/b.jpg", MediaType: "image"})
	require.NoError(t, err)

	reordered, err := svc.Reorder(testTenant, "page-home", []string{b.ID, a.ID})
	require.NoError(t, err)
	require.Len(t, reordered, 2)
	assert.Equal(t, b.ID, reordered[0].ID)
	assert.Equal(t, 0, reordered[0].SortOrder)
	assert.Equal(t, 1, reordered[1].SortOrder)
}
