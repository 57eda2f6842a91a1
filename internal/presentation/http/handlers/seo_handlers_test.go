package handlers

import (
	"net/http"
	"testing"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSeoPrimesDefaults(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/admin/seo", nil)
	mustStatus(t, w, http.StatusOK)

	var seo content.SeoNode
	decodeData(t, env, &seo)
	assert.Equal(t, "My Site", seo.Title)
	assert.Equal(t, "index,follow", seo.Robots)
}

func TestPutSeoReplacesSettings(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPut, "/api/v1/admin/seo", gin.H{
		"title":       "SitePanel Demo",
		"description": "A demo marketing site",
		"keywords":    []string{"demo", "cms"},
		"robots":      "noindex,nofollow",
	})
	mustStatus(t, w, http.StatusOK)
	var initial content.SeoNode
	decodeData(t, env, &initial)
	assert.NotEmpty(t, initial.ID)

	w, env = doJSON(t, r, http.MethodPut, "/api/v1/admin/seo", gin.H{
		"title":       "SitePanel Demo, Revised",
		"description": "A demo marketing site",
		"robots":      "index,follow",
	})
	mustStatus(t, w, http.StatusOK)

	var updated content.SeoNode
	decodeData(t, env, &updated)
	assert.Equal(t, initial.ID, updated.ID)
	assert.Equal(t, "SitePanel Demo, Revised", updated.Title)
	require.NotNil(t, updated.Changed)
}

func TestPutSeoValidates(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPut, "/api/v1/admin/seo", gin.H{
		"title":       "",
		"description": "",
		"robots":      "index,follow",
	})
	mustStatus(t, w, http.StatusUnprocessableEntity)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Fields)
}
