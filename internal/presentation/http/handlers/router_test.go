package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/database"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/tenant"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool                   `json:"success"`
	Data    json.RawMessage        `json:"data"`
	Message string                 `json:"message"`
	Fields  []apperrors.FieldError `json:"fields"`
}

// newTestRouter builds a router over an in-memory database with the
// tenant context injected directly, bypassing auth so individual
// endpoints can be exercised.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:  true,
		LogDirectory:  t.TempDir(),
		JSONFormat:    true,
		DefaultLevel:  slog.LevelError,
		ChannelLevels: make(map[logging.Channel]slog.Level),
	})
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.NewTableCreator().CreateSchema(db))

	cacheManager := manager.NewManager(logger)
	cacheManager.InitializeTenant("default")

	tenantCtx := &tenant.Context{
		TenantID:     "default",
		Config:       &tenant.Config{TenantID: "default", Status: "active"},
		Database:     &tenant.Database{Conn: db, TenantID: "default"},
		Status:       "active",
		CacheManager: cacheManager,
		Logger:       logger,
	}

	perfTracker := performance.NewTracker(performance.DefaultTrackerConfig())

	heroHandlers := NewHeroHandlers(logger, perfTracker)
	formHandlers := NewFormHandlers(logger, perfTracker)
	seoHandlers := NewSeoHandlers(logger, perfTracker)
	contentMapHandlers := NewContentMapHandlers(logger, perfTracker)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("tenant", tenantCtx)
		c.Next()
	})

	api := r.Group("/api/v1")
	api.POST("/forms/:id/submissions", formHandlers.SubmitForm)
	api.GET("/content/full-map", contentMapHandlers.GetContentMap)

	admin := api.Group("/admin")
	admin.GET("/heroes", heroHandlers.GetHeroes)
	admin.GET("/heroes/:id", heroHandlers.GetHeroByID)
	admin.POST("/heroes/create", heroHandlers.CreateHero)
	admin.PUT("/heroes/:id", heroHandlers.UpdateHero)
	admin.DELETE("/heroes/:id", heroHandlers.DeleteHero)
	admin.PUT("/heroes/order", heroHandlers.ReorderHeroes)
	admin.GET("/forms", formHandlers.GetForms)
	admin.GET("/forms/:id", formHandlers.GetFormByID)
	admin.GET("/forms/slug/:slug", formHandlers.GetFormBySlug)
	admin.POST("/forms/create", formHandlers.CreateForm)
	admin.PUT("/forms/:id", formHandlers.UpdateForm)
	admin.DELETE("/forms/:id", formHandlers.DeleteForm)
	admin.GET("/seo", seoHandlers.GetSeo)
	admin.PUT("/seo", seoHandlers.PutSeo)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "response body: %s", w.Body.String())
	return w, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NotNil(t, env.Data)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
