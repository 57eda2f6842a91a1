package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
)

func TestGetContentMapListsAllNodes(t *testing.T) {
	r := newTestRouter(t)

	hero := createHero(t, r, "page-home", "Welcome")
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/admin/forms/create", contactFormBody("contact"))
	mustStatus(t, w, http.StatusCreated)
	var form content.FormNode
	decodeData(t, env, &form)

	w, env = doJSON(t, r, http.MethodGet, "/api/v1/content/full-map", nil)
	mustStatus(t, w, http.StatusOK)
	require.True(t, env.Success)

	var items []*content.ContentMapItem
	decodeData(t, env, &items)
	require.Len(t, items, 2)

	assert.Equal(t, hero.ID, items[0].ID)
	assert.Equal(t, "Hero", items[0].Type)
	assert.Equal(t, "Welcome", items[0].Title)
	assert.Equal(t, "page-home", items[0].ParentID)
	assert.Empty(t, items[0].Slug)

	assert.Equal(t, form.ID, items[1].ID)
	assert.Equal(t, "Form", items[1].Type)
	assert.Equal(t, "contact", items[1].Slug)
	assert.Empty(t, items[1].ParentID)
}

func TestGetContentMapEmpty(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/content/full-map", nil)
	mustStatus(t, w, http.StatusOK)
	require.True(t, env.Success)

	var items []*content.ContentMapItem
	decodeData(t, env, &items)
	assert.Empty(t, items)
}
