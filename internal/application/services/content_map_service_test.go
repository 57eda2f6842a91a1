package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
)

func TestContentMapCoversEveryNodeType(t *testing.T) {
	heroRepo := newFakeHeroRepo()
	faqRepo := newFakeFaqRepo()
	ctaRepo := newFakeCtaRepo()
	formRepo := newFakeFormRepo()
	sectionRepo := newFakeMediaSectionRepo()

	hero, err := NewHeroService(heroRepo).Create(testTenant, &content.HeroDraft{PageID: "page-home", Title: "Welcome"})
	require.NoError(t, err)
	faq, err := NewFaqService(faqRepo).Create(testTenant, &content.FaqDraft{CategoryID: "cat-billing", Question: "How do I pay?", Answer: "By card."})
	require.NoError(t, err)
	cta, err := NewCtaService(ctaRepo).Create(testTenant, &content.CtaDraft{HeaderID: "header-main", Label: "Sign up", URL: "/signup", Style: "primary"})
	require.NoError(t, err)
	form, err := NewFormService(formRepo).Create(testTenant, &content.FormDraft{Title: "Contact", Slug: "contact", NotifyEmail: "owner@example.com"})
	require.NoError(t, err)
	section, err := NewMediaSectionService(sectionRepo).Create(testTenant, &content.MediaSectionDraft{PageID: "page-home", Title: "Gallery", MediaURL: "/img/gallery.jpg", MediaType: "image"})
	require.NoError(t, err)

	svc := NewContentMapService(heroRepo, faqRepo, ctaRepo, formRepo, sectionRepo)
	items, err := svc.BuildMap(testTenant)
	require.NoError(t, err)
	require.Len(t, items, 5)

	byID := make(map[string]*content.ContentMapItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	require.Contains(t, byID, hero.ID)
	assert.Equal(t, "Hero", byID[hero.ID].Type)
	assert.Equal(t, "Welcome", byID[hero.ID].Title)
	assert.Equal(t, "page-home", byID[hero.ID].ParentID)

	require.Contains(t, byID, faq.ID)
	assert.Equal(t, "Faq", byID[faq.ID].Type)
	assert.Equal(t, "How do I pay?", byID[faq.ID].Title)
	assert.Equal(t, "cat-billing", byID[faq.ID].ParentID)

	require.Contains(t, byID, cta.ID)
	assert.Equal(t, "Cta", byID[cta.ID].Type)
	assert.Equal(t, "header-main", byID[cta.ID].ParentID)

	require.Contains(t, byID, form.ID)
	assert.Equal(t, "Form", byID[form.ID].Type)
	assert.Equal(t, "contact", byID[form.ID].Slug)
	assert.Empty(t, byID[form.ID].ParentID)

	require.Contains(t, byID, section.ID)
	assert.Equal(t, "MediaSection", byID[section.ID].Type)
	assert.Equal(t, "page-home", byID[section.ID].ParentID)
}

func TestContentMapEmptyTenant(t *testing.T) {
	svc := NewContentMapService(newFakeHeroRepo(), newFakeFaqRepo(), newFakeCtaRepo(), newFakeFormRepo(), newFakeMediaSectionRepo())

	items, err := svc.BuildMap(testTenant)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items, "empty map serializes as [] rather than null")
}
