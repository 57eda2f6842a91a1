// Package content provides the seo settings repository
package content

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitepanel-go/pkg/config"
)

// SeoRepository manages the single seo settings record each tenant keeps.
type SeoRepository struct {
	db     *sql.DB
	cache  interfaces.ContentCache
	logger *logging.ChanneledLogger
}

func NewSeoRepository(db *sql.DB, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *SeoRepository {
	return &SeoRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *SeoRepository) Find(tenantID string) (*content.SeoNode, error) {
	if seo, found := r.cache.GetSeo(tenantID); found {
		return seo, nil
	}

	seo, err := r.loadFromDB()
	if err != nil {
		return nil, err
	}
	if seo == nil {
		return nil, nil
	}

	r.cache.SetSeo(tenantID, seo)
	return seo, nil
}

// Replace writes the full settings record, inserting the row if the
// tenant has never saved seo settings.
func (r *SeoRepository) Replace(tenantID string, seo *content.SeoNode) error {
	keywordsJSON, _ := json.Marshal(seo.Keywords)

	query := `INSERT INTO seo (id, title, description, keywords, og_image_url, canonical_base, robots, changed)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?)
              ON CONFLICT(id) DO UPDATE SET title = excluded.title, description = excluded.description,
              keywords = excluded.keywords, og_image_url = excluded.og_image_url,
              canonical_base = excluded.canonical_base, robots = excluded.robots, changed = excluded.changed`

	start := time.Now()
	r.logger.Database().Debug("Executing seo replace", "id", seo.ID)

	_, err := r.db.Exec(query, seo.ID, seo.Title, seo.Description, string(keywordsJSON),
		seo.OGImageURL, seo.CanonicalBase, seo.Robots, seo.Changed)
	if err != nil {
		r.logger.Database().Error("Seo replace failed", "error", err.Error(), "id", seo.ID)
		return fmt.Errorf("failed to replace seo settings: %w", err)
	}

	r.logger.Database().Info("Seo replace completed", "id", seo.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	r.cache.SetSeo(tenantID, seo)
	return nil
}

func (r *SeoRepository) loadFromDB() (*content.SeoNode, error) {
	query := `SELECT id, title, description, keywords, og_image_url, canonical_base, robots, changed FROM seo LIMIT 1`

	start := time.Now()
	r.logger.Database().Debug("Loading seo settings from database")

	row := r.db.QueryRow(query)

	var seo content.SeoNode
	var keywordsStr string
	var ogImageURL, canonicalBase sql.NullString
	var changed sql.NullTime

	err := row.Scan(&seo.ID, &seo.Title, &seo.Description, &keywordsStr, &ogImageURL, &canonicalBase, &seo.Robots, &changed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan seo settings", "error", err.Error())
		return nil, fmt.Errorf("failed to scan seo settings: %w", err)
	}

	if err := json.Unmarshal([]byte(keywordsStr), &seo.Keywords); err != nil {
		return nil, fmt.Errorf("failed to parse seo keywords payload: %w", err)
	}
	if ogImageURL.Valid {
		seo.OGImageURL = &ogImageURL.String
	}
	if canonicalBase.Valid {
		seo.CanonicalBase = &canonicalBase.String
	}
	if changed.Valid {
		seo.Changed = &changed.Time
	}

	seo.NodeType = "Seo"

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return &seo, nil
}
