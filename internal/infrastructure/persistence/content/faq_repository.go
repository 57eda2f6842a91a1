// Package content provides faqs repository
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

type FaqRepository struct {
	db     *sql.DB
	cache  interfaces.ContentCache
	logger *logging.ChanneledLogger
}

func NewFaqRepository(db *sql.DB, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *FaqRepository {
	return &FaqRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *FaqRepository) FindByID(tenantID, id string) (*content.FaqNode, error) {
	if faq, found := r.cache.GetFaq(tenantID, id); found {
		return faq, nil
	}

	faq, err := r.loadFromDB(id)
	if err != nil {
		return nil, err
	}
	if faq == nil {
		return nil, nil
	}

	r.cache.SetFaq(tenantID, faq)
	return faq, nil
}

// FindByCategory retrieves all faqs in a category ordered by sortOrder.
func (r *FaqRepository) FindByCategory(tenantID, categoryID string) ([]*content.FaqNode, error) {
	if ids, found := r.cache.GetFaqIDsByCategory(tenantID, categoryID); found {
		return r.FindByIDs(tenantID, ids)
	}

	ids, err := r.loadCategoryIDsFromDB(categoryID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*content.FaqNode{}, nil
	}

	r.cache.SetFaqIDsByCategory(tenantID, categoryID, ids)
	return r.FindByIDs(tenantID, ids)
}

// FindAll retrieves all faqs for a tenant, employing a cache-first strategy.
func (r *FaqRepository) FindAll(tenantID string) ([]*content.FaqNode, error) {
	if ids, found := r.cache.GetAllFaqIDs(tenantID); found {
		return r.FindByIDs(tenantID, ids)
	}

	ids, err := r.loadAllIDsFromDB()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*content.FaqNode{}, nil
	}

	r.cache.SetAllFaqIDs(tenantID, ids)
	return r.FindByIDs(tenantID, ids)
}

// FindByIDs resolves ids to faqs, preserving the order of the input slice.
func (r *FaqRepository) FindByIDs(tenantID string, ids []string) ([]*content.FaqNode, error) {
	byID := make(map[string]*content.FaqNode, len(ids))
	var missingIDs []string

	for _, id := range ids {
		if faq, found := r.cache.GetFaq(tenantID, id); found {
			byID[id] = faq
		} else {
			missingIDs = append(missingIDs, id)
		}
	}

	if len(missingIDs) > 0 {
		missingFaqs, err := r.loadMultipleFromDB(missingIDs)
		if err != nil {
			return nil, err
		}

		for _, faq := range missingFaqs {
			r.cache.SetFaq(tenantID, faq)
			byID[faq.ID] = faq
		}
	}

	result := make([]*content.FaqNode, 0, len(ids))
	for _, id := range ids {
		if faq, ok := byID[id]; ok {
			result = append(result, faq)
		}
	}
	return result, nil
}

func (r *FaqRepository) Store(tenantID string, faq *content.FaqNode) error {
	query := `INSERT INTO faqs (id, category_id, question, answer, sort_order, is_visible) VALUES (?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing faq insert", "id", faq.ID)

	_, err := r.db.Exec(query, faq.ID, faq.CategoryID, faq.Question, faq.Answer, faq.SortOrder, faq.IsVisible)
	if err != nil {
		r.logger.Database().Error("Faq insert failed", "error", err.Error(), "id", faq.ID)
		return fmt.Errorf("failed to insert faq: %w", err)
	}

	r.logger.Database().Info("Faq insert completed", "id", faq.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	r.cache.SetFaq(tenantID, faq)
	r.cache.AddFaqID(tenantID, faq.ID)
	if ids, found := r.cache.GetFaqIDsByCategory(tenantID, faq.CategoryID); found {
		r.cache.SetFaqIDsByCategory(tenantID, faq.CategoryID, append(ids, faq.ID))
	}
	return nil
}

func (r *FaqRepository) Update(tenantID string, faq *content.FaqNode) error {
	query := `UPDATE faqs SET category_id = ?, question = ?, answer = ?, sort_order = ?, is_visible = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing faq update", "id", faq.ID)

	_, err := r.db.Exec(query, faq.CategoryID, faq.Question, faq.Answer, faq.SortOrder, faq.IsVisible, faq.ID)
	if err != nil {
		r.logger.Database().Error("Faq update failed", "error", err.Error(), "id", faq.ID)
		return fmt.Errorf("failed to update faq: %w", err)
	}

	r.logger.Database().Info("Faq update completed", "id", faq.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	// A move between categories leaves both category indexes stale
	if old, found := r.cache.GetFaq(tenantID, faq.ID); found && old.CategoryID != faq.CategoryID {
		r.cache.InvalidateContentCache(tenantID)
	}
	r.cache.SetFaq(tenantID, faq)
	return nil
}

// ReplaceOrder persists the renumbered category collection in one transaction.
func (r *FaqRepository) ReplaceOrder(tenantID, categoryID string, ordered []*content.FaqNode) error {
	start := time.Now()
	r.logger.Database().Debug("Executing faq reorder", "categoryId", categoryID, "count", len(ordered))

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin reorder transaction: %w", err)
	}

	stmt, err := tx.Prepare(`UPDATE faqs SET sort_order = ? WHERE id = ? AND category_id = ?`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare reorder statement: %w", err)
	}
	defer stmt.Close()

	for _, faq := range ordered {
		if _, err := stmt.Exec(faq.SortOrder, faq.ID, categoryID); err != nil {
			tx.Rollback()
			r.logger.Database().Error("Faq reorder failed", "error", err.Error(), "categoryId", categoryID)
			return fmt.Errorf("failed to update faq sort order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder transaction: %w", err)
	}

	r.logger.Database().Info("Faq reorder completed", "categoryId", categoryID, "count", len(ordered), "duration", time.Since(start))
	database.CheckAndLogSlowQuery(r.logger, "REORDER_faqs", time.Since(start), tenantID)

	ids := make([]string, len(ordered))
	for i, faq := range ordered {
		r.cache.SetFaq(tenantID, faq)
		ids[i] = faq.ID
	}
	r.cache.SetFaqIDsByCategory(tenantID, categoryID, ids)
	return nil
}

func (r *FaqRepository) Delete(tenantID, id string) error {
	query := `DELETE FROM faqs WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing faq delete", "id", id)

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Database().Error("Faq delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete faq: %w", err)
	}

	r.logger.Database().Info("Faq delete completed", "id", id, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	r.cache.InvalidateFaq(tenantID, id)
	return nil
}

func (r *FaqRepository) loadAllIDsFromDB() ([]string, error) {
	query := `SELECT id FROM faqs ORDER BY category_id, sort_order`

	start := time.Now()
	r.logger.Database().Debug("Loading all faq IDs from database")

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query faq IDs", "error", err.Error())
		return nil, fmt.Errorf("failed to query faqs: %w", err)
	}
	defer rows.Close()

	var faqIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan faq ID: %w", err)
		}
		faqIDs = append(faqIDs, id)
	}

	r.logger.Database().Info("Loaded faq IDs from database", "count", len(faqIDs), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return faqIDs, rows.Err()
}

func (r *FaqRepository) loadCategoryIDsFromDB(categoryID string) ([]string, error) {
	query := `SELECT id FROM faqs WHERE category_id = ? ORDER BY sort_order`

	start := time.Now()
	r.logger.Database().Debug("Loading faq IDs for category from database", "categoryId", categoryID)

	rows, err := r.db.Query(query, categoryID)
	if err != nil {
		r.logger.Database().Error("Failed to query faq IDs for category", "error", err.Error(), "categoryId", categoryID)
		return nil, fmt.Errorf("failed to query faqs for category: %w", err)
	}
	defer rows.Close()

	var faqIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan faq ID: %w", err)
		}
		faqIDs = append(faqIDs, id)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return faqIDs, rows.Err()
}

func (r *FaqRepository) loadFromDB(id string) (*content.FaqNode, error) {
	query := `SELECT id, category_id, question, answer, sort_order, is_visible FROM faqs WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading faq from database", "id", id)

	row := r.db.QueryRow(query, id)

	var faq content.FaqNode
	err := row.Scan(&faq.ID, &faq.CategoryID, &faq.Question, &faq.Answer, &faq.SortOrder, &faq.IsVisible)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan faq", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan faq: %w", err)
	}

	faq.NodeType = "Faq"

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return &faq, nil
}

func (r *FaqRepository) loadMultipleFromDB(ids []string) ([]*content.FaqNode, error) {
	if len(ids) == 0 {
		return []*content.FaqNode{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := `SELECT id, category_id, question, answer, sort_order, is_visible
              FROM faqs WHERE id IN (` + strings.Join(placeholders, ",") + `)`

	start := time.Now()
	r.logger.Database().Debug("Loading multiple faqs from database", "count", len(ids))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query multiple faqs", "error", err.Error(), "count", len(ids))
		return nil, fmt.Errorf("failed to query faqs: %w", err)
	}
	defer rows.Close()

	var faqs []*content.FaqNode
	for rows.Next() {
		var faq content.FaqNode
		if err := rows.Scan(&faq.ID, &faq.CategoryID, &faq.Question, &faq.Answer, &faq.SortOrder, &faq.IsVisible); err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		faq.NodeType = "Faq"
		faqs = append(faqs, &faq)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return faqs, rows.Err()
}
