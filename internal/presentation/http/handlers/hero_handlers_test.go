package handlers

import (
	"net/http"
	"testing"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createHero(t *testing.T, r *gin.Engine, pageID, title string) content.HeroNode {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/admin/heroes/create", gin.H{
		"pageId":    pageID,
		"title":     title,
		"isVisible": true,
	})
	mustStatus(t, w, http.StatusCreated)
	require.True(t, env.Success)

	var hero content.HeroNode
	decodeData(t, env, &hero)
	return hero
}

func TestCreateHeroAssignsIdentity(t *testing.T) {
	r := newTestRouter(t)

	first := createHero(t, r, "page-home", "Welcome")
	second := createHero(t, r, "page-home", "Features")

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 0, first.SortOrder)
	assert.Equal(t, 1, second.SortOrder)
	assert.False(t, first.Created.IsZero())
}

func TestCreateHeroRejectsBlankTitle(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/admin/heroes/create", gin.H{
		"pageId": "page-home",
		"title":  "   ",
	})
	mustStatus(t, w, http.StatusUnprocessableEntity)
	assert.False(t, env.Success)
	require.Len(t, env.Fields, 1)
	assert.Equal(t, "title", env.Fields[0].Field)
}

func TestGetHeroesFiltersByPage(t *testing.T) {
	r := newTestRouter(t)

	createHero(t, r, "page-home", "Welcome")
	createHero(t, r, "page-about", "Our Story")
	createHero(t, r, "page-home", "Features")

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/admin/heroes?pageId=page-home", nil)
	mustStatus(t, w, http.StatusOK)

	var heroes []content.HeroNode
	decodeData(t, env, &heroes)
	require.Len(t, heroes, 2)
	assert.Equal(t, "Welcome", heroes[0].Title)
	assert.Equal(t, "Features", heroes[1].Title)

	w, env = doJSON(t, r, http.MethodGet, "/api/v1/admin/heroes", nil)
	mustStatus(t, w, http.StatusOK)
	decodeData(t, env, &heroes)
	assert.Len(t, heroes, 3)
}

func TestGetHeroByIDUnknown(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/admin/heroes/no-such-id", nil)
	mustStatus(t, w, http.StatusNotFound)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "no-such-id")
}

func TestUpdateHeroKeepsPlacement(t *testing.T) {
	r := newTestRouter(t)

	createHero(t, r, "page-home", "Welcome")
	hero := createHero(t, r, "page-home", "Features")

	w, env := doJSON(t, r, http.MethodPut, "/api/v1/admin/heroes/"+hero.ID, gin.H{
		"pageId":    "page-home",
		"title":     "Features, Revised",
		"isVisible": false,
	})
	mustStatus(t, w, http.StatusOK)

	var updated content.HeroNode
	decodeData(t, env, &updated)
	assert.Equal(t, hero.ID, updated.ID)
	assert.Equal(t, "Features, Revised", updated.Title)
	assert.Equal(t, 1, updated.SortOrder)
	require.NotNil(t, updated.Changed)
}

func TestDeleteHeroThenFetch(t *testing.T) {
	r := newTestRouter(t)

	hero := createHero(t, r, "page-home", "Welcome")

	w, env := doJSON(t, r, http.MethodDelete, "/api/v1/admin/heroes/"+hero.ID, nil)
	mustStatus(t, w, http.StatusOK)
	assert.True(t, env.Success)

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/admin/heroes/"+hero.ID, nil)
	mustStatus(t, w, http.StatusNotFound)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/admin/heroes/"+hero.ID, nil)
	mustStatus(t, w, http.StatusNotFound)
}

func TestReorderHeroes(t *testing.T) {
	r := newTestRouter(t)

	a := createHero(t, r, "page-home", "A")
	b := createHero(t, r, "page-home", "B")
	c := createHero(t, r, "page-home", "C")

	w, env := doJSON(t, r, http.MethodPut, "/api/v1/admin/heroes/order", gin.H{
		"parentId":   "page-home",
		"orderedIds": []string{c.ID, a.ID, b.ID},
	})
	mustStatus(t, w, http.StatusOK)

	var heroes []content.HeroNode
	decodeData(t, env, &heroes)
	require.Len(t, heroes, 3)
	assert.Equal(t, c.ID, heroes[0].ID)
	assert.Equal(t, a.ID, heroes[1].ID)
	assert.Equal(t, b.ID, heroes[2].ID)
	for i, hero := range heroes {
		assert.Equal(t, i, hero.SortOrder)
	}
}

func TestReorderHeroesStaleList(t *testing.T) {
	r := newTestRouter(t)

	a := createHero(t, r, "page-home", "A")
	createHero(t, r, "page-home", "B")

	w, env := doJSON(t, r, http.MethodPut, "/api/v1/admin/heroes/order", gin.H{
		"parentId":   "page-home",
		"orderedIds": []string{a.ID},
	})
	mustStatus(t, w, http.StatusConflict)
	assert.False(t, env.Success)
}

func TestReorderHeroesMissingBody(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPut, "/api/v1/admin/heroes/order", gin.H{
		"parentId": "page-home",
	})
	mustStatus(t, w, http.StatusBadRequest)
	assert.False(t, env.Success)
}
