// Package content provides heroes repository
package content

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/persistence/database"
	"github.com/AtRiskMedia/sitepanel-go/pkg/config"
)

type HeroRepository struct {
	db     *sql.DB
	cache  interfaces.ContentCache
	logger *logging.ChanneledLogger
}

func NewHeroRepository(db *sql.DB, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *HeroRepository {
	return &HeroRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *HeroRepository) FindByID(tenantID, id string) (*content.HeroNode, error) {
	if hero, found := r.cache.GetHero(tenantID, id); found {
		return hero, nil
	}

	hero, err := r.loadFromDB(id)
	if err != nil {
		return nil, err
	}
	if hero == nil {
		return nil, nil
	}

	r.cache.SetHero(tenantID, hero)
	return hero, nil
}

// FindByPage retrieves all heroes for a page ordered by sortOrder,
// employing a cache-first strategy on the page index.
func (r *HeroRepository) FindByPage(tenantID, pageID string) ([]*content.HeroNode, error) {
	if ids, found := r.cache.GetHeroIDsByPage(tenantID, pageID); found {
		return r.FindByIDs(tenantID, ids)
	}

	ids, err := r.loadPageIDsFromDB(pageID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*content.HeroNode{}, nil
	}

	r.cache.SetHeroIDsByPage(tenantID, pageID, ids)
	return r.FindByIDs(tenantID, ids)
}

// FindAll retrieves all heroes for a tenant, employing a cache-first strategy.
func (r *HeroRepository) FindAll(tenantID string) ([]*content.HeroNode, error) {
	if ids, found := r.cache.GetAllHeroIDs(tenantID); found {
		return r.FindByIDs(tenantID, ids)
	}

	ids, err := r.loadAllIDsFromDB()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*content.HeroNode{}, nil
	}

	r.cache.SetAllHeroIDs(tenantID, ids)
	return r.FindByIDs(tenantID, ids)
}

// FindByIDs resolves ids to heroes, preserving the order of the input slice.
func (r *HeroRepository) FindByIDs(tenantID string, ids []string) ([]*content.HeroNode, error) {
	byID := make(map[string]*content.HeroNode, len(ids))
	var missingIDs []string

	for _, id := range ids {
		if hero, found := r.cache.GetHero(tenantID, id); found {
			byID[id] = hero
		} else {
			missingIDs = append(missingIDs, id)
		}
	}

	if len(missingIDs) > 0 {
		missingHeroes, err := r.loadMultipleFromDB(missingIDs)
		if err != nil {
			return nil, err
		}

		for _, hero := range missingHeroes {
			r.cache.SetHero(tenantID, hero)
			byID[hero.ID] = hero
		}
	}

	result := make([]*content.HeroNode, 0, len(ids))
	for _, id := range ids {
		if hero, ok := byID[id]; ok {
			result = append(result, hero)
		}
	}
	return result, nil
}

func (r *HeroRepository) Store(tenantID string, hero *content.HeroNode) error {
	query := `INSERT INTO heroes (id, page_id, title, subtitle, image_url, cta_label, cta_url, sort_order, is_visible, created, changed)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing hero insert", "id", hero.ID)

	_, err := r.db.Exec(query, hero.ID, hero.PageID, hero.Title, hero.Subtitle, hero.ImageURL,
		hero.CtaLabel, hero.CtaURL, hero.SortOrder, hero.IsVisible, hero.Created, hero.Changed)
	if err != nil {
		r.logger.Database().Error("Hero insert failed", "error", err.Error(), "id", hero.ID)
		return fmt.Errorf("failed to insert hero: %w", err)
	}

	r.logger.Database().Info("Hero insert completed", "id", hero.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	r.cache.SetHero(tenantID, hero)
	r.cache.AddHeroID(tenantID, hero.ID)
	if ids, found := r.cache.GetHeroIDsByPage(tenantID, hero.PageID); found {
		r.cache.SetHeroIDsByPage(tenantID, hero.PageID, append(ids, hero.ID))
	}
	return nil
}

func (r *HeroRepository) Update(tenantID string, hero *content.HeroNode) error {
	query := `UPDATE heroes SET page_id = ?, title = ?, subtitle = ?, image_url = ?, cta_label = ?, cta_url = ?, sort_order = ?, is_visible = ?, changed = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing hero update", "id", hero.ID)

	_, err := r.db.Exec(query, hero.PageID, hero.Title, hero.Subtitle, hero.ImageURL,
		hero.CtaLabel, hero.CtaURL, hero.SortOrder, hero.IsVisible, hero.Changed, hero.ID)
	if err != nil {
		r.logger.Database().Error("Hero update failed", "error", err.Error(), "id", hero.ID)
		return fmt.Errorf("failed to update hero: %w", err)
	}

	r.logger.Database().Info("Hero update completed", "id", hero.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	// A move between pages leaves both page indexes stale
	if old, found := r.cache.GetHero(tenantID, hero.ID); found && old.PageID != hero.PageID {
		r.cache.InvalidateContentCache(tenantID)
	}
	r.cache.SetHero(tenantID, hero)
	return nil
}

// ReplaceOrder persists the renumbered page collection in one transaction.
func (r *HeroRepository) ReplaceOrder(tenantID, pageID string, ordered []*content.HeroNode) error {
	start := time.Now()
	r.logger.Database().Debug("Executing hero reorder", "pageId", pageID, "count", len(ordered))

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin reorder transaction: %w", err)
	}

	stmt, err := tx.Prepare(`UPDATE heroes SET sort_order = ?, changed = ? WHERE id = ? AND page_id = ?`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare reorder statement: %w", err)
	}
	defer stmt.Close()

	for _, hero := range ordered {
		if _, err := stmt.Exec(hero.SortOrder, hero.Changed, hero.ID, pageID); err != nil {
			tx.Rollback()
			r.logger.Database().Error("Hero reorder failed", "error", err.Error(), "pageId", pageID)
			return fmt.Errorf("failed to update hero sort order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder transaction: %w", err)
	}

	r.logger.Database().Info("Hero reorder completed", "pageId", pageID, "count", len(ordered), "duration", time.Since(start))
	database.CheckAndLogSlowQuery(r.logger, "REORDER_heroes", time.Since(start), tenantID)

	ids := make([]string, len(ordered))
	for i, hero := range ordered {
		r.cache.SetHero(tenantID, hero)
		ids[i] = hero.ID
	}
	r.cache.SetHeroIDsByPage(tenantID, pageID, ids)
	return nil
}

func (r *HeroRepository) Delete(tenantID, id string) error {
	query := `DELETE FROM heroes WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing hero delete", "id", id)

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Database().Error("Hero delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete hero: %w", err)
	}

	r.logger.Database().Info("Hero delete completed", "id", id, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	r.cache.InvalidateHero(tenantID, id)
	return nil
}

func (r *HeroRepository) loadAllIDsFromDB() ([]string, error) {
	query := `SELECT id FROM heroes ORDER BY page_id, sort_order`

	start := time.Now()
	r.logger.Database().Debug("Loading all hero IDs from database")

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query hero IDs", "error", err.Error())
		return nil, fmt.Errorf("failed to query heroes: %w", err)
	}
	defer rows.Close()

	var heroIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan hero ID: %w", err)
		}
		heroIDs = append(heroIDs, id)
	}

	r.logger.Database().Info("Loaded hero IDs from database", "count", len(heroIDs), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return heroIDs, rows.Err()
}

func (r *HeroRepository) loadPageIDsFromDB(pageID string) ([]string, error) {
	query := `SELECT id FROM heroes WHERE page_id = ? ORDER BY sort_order`

	start := time.Now()
	r.logger.Database().Debug("Loading hero IDs for page from database", "pageId", pageID)

	rows, err := r.db.Query(query, pageID)
	if err != nil {
		r.logger.Database().Error("Failed to query hero IDs for page", "error", err.Error(), "pageId", pageID)
		return nil, fmt.Errorf("failed to query heroes for page: %w", err)
	}
	defer rows.Close()

	var heroIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan hero ID: %w", err)
		}
		heroIDs = append(heroIDs, id)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return heroIDs, rows.Err()
}

func (r *HeroRepository) loadFromDB(id string) (*content.HeroNode, error) {
	query := `SELECT id, page_id, title, subtitle, image_url, cta_label, cta_url, sort_order, is_visible, created, changed FROM heroes WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading hero from database", "id", id)

	row := r.db.QueryRow(query, id)

	hero, err := scanHero(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan hero", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan hero: %w", err)
	}

	r.logger.Database().Info("Hero loaded from database", "id", id, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return hero, nil
}

func (r *HeroRepository) loadMultipleFromDB(ids []string) ([]*content.HeroNode, error) {
	if len(ids) == 0 {
		return []*content.HeroNode{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := `SELECT id, page_id, title, subtitle, image_url, cta_label, cta_url, sort_order, is_visible, created, changed
              FROM heroes WHERE id IN (` + strings.Join(placeholders, ",") + `)`

	start := time.Now()
	r.logger.Database().Debug("Loading multiple heroes from database", "count", len(ids))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query multiple heroes", "error", err.Error(), "count", len(ids))
		return nil, fmt.Errorf("failed to query heroes: %w", err)
	}
	defer rows.Close()

	var heroes []*content.HeroNode
	for rows.Next() {
		hero, err := scanHero(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hero: %w", err)
		}
		heroes = append(heroes, hero)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return heroes, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHero(row rowScanner) (*content.HeroNode, error) {
	var hero content.HeroNode
	var subtitle, imageURL, ctaLabel, ctaURL sql.NullString
	var changed sql.NullTime

	err := row.Scan(&hero.ID, &hero.PageID, &hero.Title, &subtitle, &imageURL,
		&ctaLabel, &ctaURL, &hero.SortOrder, &hero.IsVisible, &hero.Created, &changed)
	if err != nil {
		return nil, err
	}

	if subtitle.Valid {
		hero.Subtitle = &subtitle.String
	}
	if imageURL.Valid {
		hero.ImageURL = &imageURL.String
	}
	if ctaLabel.Valid {
		hero.CtaLabel = &ctaLabel.String
	}
	if ctaURL.Valid {
		hero.CtaURL = &ctaURL.String
	}
	if changed.Valid {
		hero.Changed = &changed.Time
	}

	hero.NodeType = "Hero"
	return &hero, nil
}
