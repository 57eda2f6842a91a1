// Package content provides ctas repository
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

type CtaRepository struct {
	db     *sql.DB
	cache  interfaces.ContentCache
	logger *logging.ChanneledLogger
}

func NewCtaRepository(db *sql.DB, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *CtaRepository {
	return &CtaRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *CtaRepository) FindByID(tenantID, id string) (*content.CtaNode, error) {
	if cta, found := r.cache.GetCta(tenantID, id); found {
		return cta, nil
	}

	cta, err := r.loadFromDB(id)
	if err != nil {
		return nil, err
	}
	if cta == nil {
		return nil, nil
	}

	r.cache.SetCta(tenantID, cta)
	return cta, nil
}

// FindByHeader retrieves all ctas for a header ordered by sortOrder.
func (r *CtaRepository) FindByHeader(tenantID, headerID string) ([]*content.CtaNode, error) {
	if ids, found := r.cache.GetCtaIDsByHeader(tenantID, headerID); found {
		return r.FindByIDs(tenantID, ids)
	}

	ids, err := r.loadHeaderIDsFromDB(headerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*content.CtaNode{}, nil
	}

	r.cache.SetCtaIDsByHeader(tenantID, headerID, ids)
	return r.FindByIDs(tenantID, ids)
}

// FindAll retrieves all ctas for a tenant, employing a cache-first strategy.
func (r *CtaRepository) FindAll(tenantID string) ([]*content.CtaNode, error) {
	if ids, found := r.cache.GetAllCtaIDs(tenantID); found {
		return r.FindByIDs(tenantID, ids)
	}

	ids, err := r.loadAllIDsFromDB()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*content.CtaNode{}, nil
	}

	r.cache.SetAllCtaIDs(tenantID, ids)
	return r.FindByIDs(tenantID, ids)
}

// FindByIDs resolves ids to ctas, preserving the order of the input slice.
func (r *CtaRepository) FindByIDs(tenantID string, ids []string) ([]*content.CtaNode, error) {
	byID := make(map[string]*content.CtaNode, len(ids))
	var missingIDs []string

	for _, id := range ids {
		if cta, found := r.cache.GetCta(tenantID, id); found {
			byID[id] = cta
		} else {
			missingIDs = append(missingIDs, id)
		}
	}

	if len(missingIDs) > 0 {
		missingCtas, err := r.loadMultipleFromDB(missingIDs)
		if err != nil {
			return nil, err
		}

		for _, cta := range missingCtas {
			r.cache.SetCta(tenantID, cta)
			byID[cta.ID] = cta
		}
	}

	result := make([]*content.CtaNode, 0, len(ids))
	for _, id := range ids {
		if cta, ok := byID[id]; ok {
			result = append(result, cta)
		}
	}
	return result, nil
}

func (r *CtaRepository) Store(tenantID string, cta *content.CtaNode) error {
	query := `INSERT INTO ctas (id, header_id, label, url, style, sort_order, is_visible) VALUES (?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing cta insert", "id", cta.ID)

	_, err := r.db.Exec(query, cta.ID, cta.HeaderID, cta.Label, cta.URL, string(cta.Style), cta.SortOrder, cta.IsVisible)
	if err != nil {
		r.logger.Database().Error("Cta insert failed", "error", err.Error(), "id", cta.ID)
		return fmt.Errorf("failed to insert cta: %w", err)
	}

	r.logger.Database().Info("Cta insert completed", "id", cta.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	r.cache.SetCta(tenantID, cta)
	r.cache.AddCtaID(tenantID, cta.ID)
	if ids, found := r.cache.GetCtaIDsByHeader(tenantID, cta.HeaderID); found {
		r.cache.SetCtaIDsByHeader(tenantID, cta.HeaderID, append(ids, cta.ID))
	}
	return nil
}

func (r *CtaRepository) Update(tenantID string, cta *content.CtaNode) error {
	query := `UPDATE ctas SET header_id = ?, label = ?, url = ?, style = ?, sort_order = ?, is_visible = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing cta update", "id", cta.ID)

	_, err := r.db.Exec(query, cta.HeaderID, cta.Label, cta.URL, string(cta.Style), cta.SortOrder, cta.IsVisible, cta.ID)
	if err != nil {
		r.logger.Database().Error("Cta update failed", "error", err.Error(), "id", cta.ID)
		return fmt.Errorf("failed to update cta: %w", err)
	}

	r.logger.Database().Info("Cta update completed", "id", cta.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	// A move between headers leaves both header indexes stale
	if old, found := r.cache.GetCta(tenantID, cta.ID); found && old.HeaderID != cta.HeaderID {
		r.cache.InvalidateContentCache(tenantID)
	}
	r.cache.SetCta(tenantID, cta)
	return nil
}

// ReplaceOrder persists the renumbered header collection in one transaction.
func (r *CtaRepository) ReplaceOrder(tenantID, headerID string, ordered []*content.CtaNode) error {
	start := time.Now()
	r.logger.Database().Debug("Executing cta reorder", "headerId", headerID, "count", len(ordered))

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin reorder transaction: %w", err)
	}

	stmt, err := tx.Prepare(`UPDATE ctas SET sort_order = ? WHERE id = ? AND header_id = ?`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare reorder statement: %w", err)
	}
	defer stmt.Close()

	for _, cta := range ordered {
		if _, err := stmt.Exec(cta.SortOrder, cta.ID, headerID); err != nil {
			tx.Rollback()
			r.logger.Database().Error("Cta reorder failed", "error", err.Error(), "headerId", headerID)
			return fmt.Errorf("failed to update cta sort order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder transaction: %w", err)
	}

	r.logger.Database().Info("Cta reorder completed", "headerId", headerID, "count", len(ordered), "duration", time.Since(start))
	database.CheckAndLogSlowQuery(r.logger, "REORDER_ctas", time.Since(start), tenantID)

	ids := make([]string, len(ordered))
	for i, cta := range ordered {
		r.cache.SetCta(tenantID, cta)
		ids[i] = cta.ID
	}
	r.cache.SetCtaIDsByHeader(tenantID, headerID, ids)
	return nil
}

func (r *CtaRepository) Delete(tenantID, id string) error {
	query := `DELETE FROM ctas WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing cta delete", "id", id)

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Database().Error("Cta delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete cta: %w", err)
	}

	r.logger.Database().Info("Cta delete completed", "id", id, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	r.cache.InvalidateCta(tenantID, id)
	return nil
}

func (r *CtaRepository) loadAllIDsFromDB() ([]string, error) {
	query := `SELECT id FROM ctas ORDER BY header_id, sort_order`

	start := time.Now()
	r.logger.Database().Debug("Loading all cta IDs from database")

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query cta IDs", "error", err.Error())
		return nil, fmt.Errorf("failed to query ctas: %w", err)
	}
	defer rows.Close()

	var ctaIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan cta ID: %w", err)
		}
		ctaIDs = append(ctaIDs, id)
	}

	r.logger.Database().Info("Loaded cta IDs from database", "count", len(ctaIDs), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return ctaIDs, rows.Err()
}

func (r *CtaRepository) loadHeaderIDsFromDB(headerID string) ([]string, error) {
	query := `SELECT id FROM ctas WHERE header_id = ? ORDER BY sort_order`

	start := time.Now()
	r.logger.Database().Debug("Loading cta IDs for header from database", "headerId", headerID)

	rows, err := r.db.Query(query, headerID)
	if err != nil {
		r.logger.Database().Error("Failed to query cta IDs for header", "error", err.Error(), "headerId", headerID)
		return nil, fmt.Errorf("failed to query ctas for header: %w", err)
	}
	defer rows.Close()

	var ctaIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan cta ID: %w", err)
		}
		ctaIDs = append(ctaIDs, id)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return ctaIDs, rows.Err()
}

func (r *CtaRepository) loadFromDB(id string) (*content.CtaNode, error) {
	query := `SELECT id, header_id, label, url, style, sort_order, is_visible FROM ctas WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading cta from database", "id", id)

	row := r.db.QueryRow(query, id)

	var cta content.CtaNode
	var style string
	err := row.Scan(&cta.ID, &cta.HeaderID, &cta.Label, &cta.URL, &style, &cta.SortOrder, &cta.IsVisible)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan cta", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan cta: %w", err)
	}

	cta.Style = content.CtaStyle(style)
	cta.NodeType = "Cta"

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return &cta, nil
}

func (r *CtaRepository) loadMultipleFromDB(ids []string) ([]*content.CtaNode, error) {
	if len(ids) == 0 {
		return []*content.CtaNode{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := `SELECT id, header_id, label, url, style, sort_order, is_visible
              FROM ctas WHERE id IN (` + strings.Join(placeholders, ",") + `)`

	start := time.Now()
	r.logger.Database().Debug("Loading multiple ctas from database", "count", len(ids))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query multiple ctas", "error", err.Error(), "count", len(ids))
		return nil, fmt.Errorf("failed to query ctas: %w", err)
	}
	defer rows.Close()

	var ctas []*content.CtaNode
	for rows.Next() {
		var cta content.CtaNode
		var style string
		if err := rows.Scan(&cta.ID, &cta.HeaderID, &cta.Label, &cta.URL, &style, &cta.SortOrder, &cta.IsVisible); err != nil {
			return nil, fmt.Errorf("failed to scan cta: %w", err)
		}
		cta.Style = content.CtaStyle(style)
		cta.NodeType = "Cta"
		ctas = append(ctas, &cta)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return ctas, rows.Err()
}
