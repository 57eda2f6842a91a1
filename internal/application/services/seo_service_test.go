package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
)

type fakeSeoRepo struct {
	seo *content.SeoNode
}

func (r *fakeSeoRepo) Find(tenantID string) (*content.SeoNode, error) {
	return r.seo, nil
}

func (r *fakeSeoRepo) Replace(tenantID string, seo *content.SeoNode) error {
	r.seo = seo
	return nil
}

func TestSeoServiceGetPrimesDefaults(t *testing.T) {
	svc := NewSeoService(&fakeSeoRepo{})

	seo, err := svc.Get(testTenant)
	require.NoError(t, err)
	assert.Equal(t, "My Site", seo.Title)
	assert.Equal(t, "index,follow", seo.Robots)
}

func TestSeoServicePutKeepsIdentityAcrossReplacements(t *testing.T) {
	repo := &fakeSeoRepo{}
	svc := NewSeoService(repo)

	first, err := svc.Put(testTenant, &content.SeoDraft{Title: "Acme", Description: "Widgets for everyone"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := svc.Put(testTenant, &content.SeoDraft{Title: "Acme Inc", Description: "Widgets", Robots: "noindex"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "the singleton keeps its id across replacements")
	assert.Equal(t, "noindex", second.Robots)
	require.NotNil(t, second.Changed)
	assert.Equal(t, second, repo.seo)
}
