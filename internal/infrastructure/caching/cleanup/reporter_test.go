package cleanup

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheFixture(t *testing.T) *manager.Manager {
	t.Helper()

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:  true,
		LogDirectory:  t.TempDir(),
		JSONFormat:    true,
		DefaultLevel:  slog.LevelError,
		ChannelLevels: make(map[logging.Channel]slog.Level),
	})
	require.NoError(t, err)

	cacheManager := manager.NewManager(logger)
	cacheManager.InitializeTenant("default")
	return cacheManager
}

func TestTenantReportCountsCachedNodes(t *testing.T) {
	cacheManager := newCacheFixture(t)

	cacheManager.SetHero("default", &content.HeroNode{ID: "h1", PageID: "page-home", Title: "Welcome"})
	cacheManager.SetHero("default", &content.HeroNode{ID: "h2", PageID: "page-home", Title: "Features"})
	cacheManager.SetAllHeroIDs("default", []string{"h1", "h2"})
	cacheManager.SetForm("default", &content.FormNode{ID: "f1", Title: "Contact", Slug: "contact"})
	cacheManager.SetAllFormIDs("default", []string{"f1"})
	cacheManager.SetSeo("default", &content.SeoNode{ID: "s1", Title: "My Site", Robots: "index,follow"})

	report := NewReporter(cacheManager).GenerateTenantReport("default")
	assert.Contains(t, report, "default")
	assert.Contains(t, report, "heroes=")
	assert.Contains(t, report, "forms=")
	assert.Contains(t, report, "total=")

	stats := cacheManager.GetTenantStats("default")
	assert.Equal(t, int64(4), stats.Size)
}

func TestWorkerFlushesCachesOnStop(t *testing.T) {
	cacheManager := newCacheFixture(t)
	cacheManager.SetHero("default", &content.HeroNode{ID: "h1", PageID: "page-home", Title: "Welcome"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	NewWorker(cacheManager, NewConfig()).Start(ctx)

	_, found := cacheManager.GetHero("default", "h1")
	assert.False(t, found)
	assert.Equal(t, int64(0), cacheManager.GetTenantStats("default").Size)
}

func TestReporterLogLinesDoNotPanic(t *testing.T) {
	reporter := NewReporter(newCacheFixture(t))
	var sb strings.Builder
	sb.WriteString(reporter.GenerateTenantReport("unknown-tenant"))
	assert.NotEmpty(t, sb.String())
}
