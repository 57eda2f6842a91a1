// Package content provides media sections repository
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

type MediaSectionRepository struct {
	db     *sql.DB
	cache  interfaces.ContentCache
	logger *logging.ChanneledLogger
}

func NewMediaSectionRepository(db *sql.DB, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *MediaSectionRepository {
	return &MediaSectionRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *MediaSectionRepository) FindByID(tenantID, id string) (*content.MediaSectionNode, error) {
	if section, found := r.cache.GetMediaSection(tenantID, id); found {
		return section, nil
	}

	section, err := r.loadFromDB(id)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, nil
	}

	r.cache.SetMediaSection(tenantID, section)
	return section, nil
}

// FindByPage retrieves all media sections for a page ordered by sortOrder.
// The page index for media sections is not cached separately; the query
// is cheap and page collections are small.
func (r *MediaSectionRepository) FindByPage(tenantID, pageID string) ([]*content.MediaSectionNode, error) {
	ids, err := r.loadPageIDsFromDB(pageID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*content.MediaSectionNode{}, nil
	}

	return r.FindByIDs(tenantID, ids)
}

// FindAll retrieves all media sections for a tenant, employing a cache-first strategy.
func (r *MediaSectionRepository) FindAll(tenantID string) ([]*content.MediaSectionNode, error) {
	if ids, found := r.cache.GetAllMediaSectionIDs(tenantID); found {
		return r.FindByIDs(tenantID, ids)
	}

	ids, err := r.loadAllIDsFromDB()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*content.MediaSectionNode{}, nil
	}

	r.cache.SetAllMediaSectionIDs(tenantID, ids)
	return r.FindByIDs(tenantID, ids)
}

// FindByIDs resolves ids to media sections, preserving the order of the input slice.
func (r *MediaSectionRepository) FindByIDs(tenantID string, ids []string) ([]*content.MediaSectionNode, error) {
	byID := make(map[string]*content.MediaSectionNode, len(ids))
	var missingIDs []string

	for _, id := range ids {
		if section, found := r.cache.GetMediaSection(tenantID, id); found {
			byID[id] = section
		} else {
			missingIDs = append(missingIDs, id)
		}
	}

	if len(missingIDs) > 0 {
		missingSections, err := r.loadMultipleFromDB(missingIDs)
		if err != nil {
			return nil, err
		}

		for _, section := range missingSections {
			r.cache.SetMediaSection(tenantID, section)
			byID[section.ID] = section
		}
	}

	result := make([]*content.MediaSectionNode, 0, len(ids))
	for _, id := range ids {
		if section, ok := byID[id]; ok {
			result = append(result, section)
		}
	}
	return result, nil
}

func (r *MediaSectionRepository) Store(tenantID string, section *content.MediaSectionNode) error {
	query := `INSERT INTO media_sections (id, page_id, title, media_url, media_type, caption, sort_order, is_visible) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing media section insert", "id", section.ID)

	_, err := r.db.Exec(query, section.ID, section.PageID, section.Title, section.MediaURL,
		string(section.MediaType), section.Caption, section.SortOrder, section.IsVisible)
	if err != nil {
		r.logger.Database().Error("Media section insert failed", "error", err.Error(), "id", section.ID)
		return fmt.Errorf("failed to insert media section: %w", err)
	}

	r.logger.Database().Info("Media section insert completed", "id", section.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	r.cache.SetMediaSection(tenantID, section)
	r.cache.AddMediaSectionID(tenantID, section.ID)
	return nil
}

func (r *MediaSectionRepository) Update(tenantID string, section *content.MediaSectionNode) error {
	query := `UPDATE media_sections SET page_id = ?, title = ?, media_url = ?, media_type = ?, caption = ?, sort_order = ?, is_visible = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing media section update", "id", section.ID)

	_, err := r.db.Exec(query, section.PageID, section.Title, section.MediaURL,
		string(section.MediaType), section.Caption, section.SortOrder, section.IsVisible, section.ID)
	if err != nil {
		r.logger.Database().Error("Media section update failed", "error", err.Error(), "id", section.ID)
		return fmt.Errorf("failed to update media section: %w", err)
	}

	r.logger.Database().Info("Media section update completed", "id", section.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	r.cache.SetMediaSection(tenantID, section)
	return nil
}

// ReplaceOrder persists the renumbered page collection in one transaction.
func (r *MediaSectionRepository) ReplaceOrder(tenantID, pageID string, ordered []*content.MediaSectionNode) error {
	start := time.Now()
	r.logger.Database().Debug("Executing media section reorder", "pageId", pageID, "count", len(ordered))

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin reorder transaction: %w", err)
	}

	stmt, err := tx.Prepare(`UPDATE media_sections SET sort_order = ? WHERE id = ? AND page_id = ?`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare reorder statement: %w", err)
	}
	defer stmt.Close()

	for _, section := range ordered {
		if _, err := stmt.Exec(section.SortOrder, section.ID, pageID); err != nil {
			tx.Rollback()
			r.logger.Database().Error("Media section reorder failed", "error", err.Error(), "pageId", pageID)
			return fmt.Errorf("failed to update media section sort order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder transaction: %w", err)
	}

	r.logger.Database().Info("Media section reorder completed", "pageId", pageID, "count", len(ordered), "duration", time.Since(start))
	database.CheckAndLogSlowQuery(r.logger, "REORDER_media_sections", time.Since(start), tenantID)

	for _, section := range ordered {
		r.cache.SetMediaSection(tenantID, section)
	}
	return nil
}

func (r *MediaSectionRepository) Delete(tenantID, id string) error {
	query := `DELETE FROM media_sections WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing media section delete", "id", id)

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Database().Error("Media section delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete media section: %w", err)
	}

	r.logger.Database().Info("Media section delete completed", "id", id, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	r.cache.InvalidateMediaSection(tenantID, id)
	return nil
}

func (r *MediaSectionRepository) loadAllIDsFromDB() ([]string, error) {
	query := `SELECT id FROM media_sections ORDER BY page_id, sort_order`

	start := time.Now()
	r.logger.Database().Debug("Loading all media section IDs from database")

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query media section IDs", "error", err.Error())
		return nil, fmt.Errorf("failed to query media sections: %w", err)
	}
	defer rows.Close()

	var sectionIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan media section ID: %w", err)
		}
		sectionIDs = append(sectionIDs, id)
	}

	r.logger.Database().Info("Loaded media section IDs from database", "count", len(sectionIDs), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return sectionIDs, rows.Err()
}

func (r *MediaSectionRepository) loadPageIDsFromDB(pageID string) ([]string, error) {
	query := `SELECT id FROM media_sections WHERE page_id = ? ORDER BY sort_order`

	start := time.Now()
	r.logger.Database().Debug("Loading media section IDs for page from database", "pageId", pageID)

	rows, err := r.db.Query(query, pageID)
	if err != nil {
		r.logger.Database().Error("Failed to query media section IDs for page", "error", err.Error(), "pageId", pageID)
		return nil, fmt.Errorf("failed to query media sections for page: %w", err)
	}
	defer rows.Close()

	var sectionIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan media section ID: %w", err)
		}
		sectionIDs = append(sectionIDs, id)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return sectionIDs, rows.Err()
}

func (r *MediaSectionRepository) loadFromDB(id string) (*content.MediaSectionNode, error) {
	query := `SELECT id, page_id, title, media_url, media_type, caption, sort_order, is_visible FROM media_sections WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading media section from database", "id", id)

	row := r.db.QueryRow(query, id)

	section, err := scanMediaSection(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan media section", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan media section: %w", err)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return section, nil
}

func (r *MediaSectionRepository) loadMultipleFromDB(ids []string) ([]*content.MediaSectionNode, error) {
	if len(ids) == 0 {
		return []*content.MediaSectionNode{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := `SELECT id, page_id, title, media_url, media_type, caption, sort_order, is_visible
              FROM media_sections WHERE id IN (` + strings.Join(placeholders, ",") + `)`

	start := time.Now()
	r.logger.Database().Debug("Loading multiple media sections from database", "count", len(ids))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query multiple media sections", "error", err.Error(), "count", len(ids))
		return nil, fmt.Errorf("failed to query media sections: %w", err)
	}
	defer rows.Close()

	var sections []*content.MediaSectionNode
	for rows.Next() {
		section, err := scanMediaSection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan media section: %w", err)
		}
		sections = append(sections, section)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return sections, rows.Err()
}

func scanMediaSection(row rowScanner) (*content.MediaSectionNode, error) {
	var section content.MediaSectionNode
	var mediaType string
	var caption sql.NullString

	err := row.Scan(&section.ID, &section.PageID, &section.Title, &section.MediaURL,
		&mediaType, &caption, &section.SortOrder, &section.IsVisible)
	if err != nil {
		return nil, err
	}

	section.MediaType = content.MediaType(mediaType)
	if caption.Valid {
		section.Caption = &caption.String
	}

	section.NodeType = "MediaSection"
	return &section, nil
}
