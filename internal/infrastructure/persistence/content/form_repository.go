// Package content provides forms repository
package content

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/caching/interfaces"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/sitepanel-go/pkg/config"
)

type FormRepository struct {
	db     *sql.DB
	cache  interfaces.ContentCache
	logger *logging.ChanneledLogger
}

func NewFormRepository(db *sql.DB, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *FormRepository {
	return &FormRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *FormRepository) FindByID(tenantID, id string) (*content.FormNode, error) {
	if form, found := r.cache.GetForm(tenantID, id); found {
		return form, nil
	}

	form, err := r.loadFromDB(id)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, nil
	}

	r.cache.SetForm(tenantID, form)
	return form, nil
}

// FindBySlug resolves a form by its public slug.
func (r *FormRepository) FindBySlug(tenantID, slug string) (*content.FormNode, error) {
	if id, found := r.cache.GetFormBySlug(tenantID, slug); found {
		return r.FindByID(tenantID, id)
	}

	form, err := r.loadFromDBBySlug(slug)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, nil
	}

	r.cache.SetForm(tenantID, form)
	return form, nil
}

// FindAll retrieves all forms for a tenant, employing a cache-first strategy.
func (r *FormRepository) FindAll(tenantID string) ([]*content.FormNode, error) {
	if ids, found := r.cache.GetAllFormIDs(tenantID); found {
		return r.FindByIDs(tenantID, ids)
	}

	ids, err := r.loadAllIDsFromDB()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*content.FormNode{}, nil
	}

	r.cache.SetAllFormIDs(tenantID, ids)
	return r.FindByIDs(tenantID, ids)
}

// FindByIDs resolves ids to forms, preserving the order of the input slice.
func (r *FormRepository) FindByIDs(tenantID string, ids []string) ([]*content.FormNode, error) {
	byID := make(map[string]*content.FormNode, len(ids))
	var missingIDs []string

	for _, id := range ids {
		if form, found := r.cache.GetForm(tenantID, id); found {
			byID[id] = form
		} else {
			missingIDs = append(missingIDs, id)
		}
	}

	if len(missingIDs) > 0 {
		missingForms, err := r.loadMultipleFromDB(missingIDs)
		if err != nil {
			return nil, err
		}

		for _, form := range missingForms {
			r.cache.SetForm(tenantID, form)
			byID[form.ID] = form
		}
	}

	result := make([]*content.FormNode, 0, len(ids))
	for _, id := range ids {
		if form, ok := byID[id]; ok {
			result = append(result, form)
		}
	}
	return result, nil
}

func (r *FormRepository) Store(tenantID string, form *content.FormNode) error {
	fieldsJSON, _ := json.Marshal(form.Fields)

	query := `INSERT INTO forms (id, title, slug, notify_email, fields, is_active, created, changed) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing form insert", "id", form.ID)

	_, err := r.db.Exec(query, form.ID, form.Title, form.Slug, form.NotifyEmail, string(fieldsJSON), form.IsActive, form.Created, form.Changed)
	if err != nil {
		r.logger.Database().Error("Form insert failed", "error", err.Error(), "id", form.ID)
		return fmt.Errorf("failed to insert form: %w", err)
	}

	r.logger.Database().Info("Form insert completed", "id", form.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	r.cache.SetForm(tenantID, form)
	r.cache.AddFormID(tenantID, form.ID)
	return nil
}

// Update replaces the full form record. Embedded fields are written
// wholesale; there is no per-field persistence.
func (r *FormRepository) Update(tenantID string, form *content.FormNode) error {
	fieldsJSON, _ := json.Marshal(form.Fields)

	query := `UPDATE forms SET title = ?, slug = ?, notify_email = ?, fields = ?, is_active = ?, changed = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing form update", "id", form.ID)

	_, err := r.db.Exec(query, form.Title, form.Slug, form.NotifyEmail, string(fieldsJSON), form.IsActive, form.Changed, form.ID)
	if err != nil {
		r.logger.Database().Error("Form update failed", "error", err.Error(), "id", form.ID)
		return fmt.Errorf("failed to update form: %w", err)
	}

	r.logger.Database().Info("Form update completed", "id", form.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	// A slug change leaves the old slug mapping stale
	if old, found := r.cache.GetForm(tenantID, form.ID); found && old.Slug != form.Slug {
		r.cache.InvalidateForm(tenantID, form.ID)
		r.cache.AddFormID(tenantID, form.ID)
	}
	r.cache.SetForm(tenantID, form)
	return nil
}

func (r *FormRepository) Delete(tenantID, id string) error {
	query := `DELETE FROM forms WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing form delete", "id", id)

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Database().Error("Form delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete form: %w", err)
	}

	r.logger.Database().Info("Form delete completed", "id", id, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, tenantID)
	}

	r.cache.InvalidateForm(tenantID, id)
	return nil
}

func (r *FormRepository) loadAllIDsFromDB() ([]string, error) {
	query := `SELECT id FROM forms ORDER BY title`

	start := time.Now()
	r.logger.Database().Debug("Loading all form IDs from database")

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query form IDs", "error", err.Error())
		return nil, fmt.Errorf("failed to query forms: %w", err)
	}
	defer rows.Close()

	var formIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan form ID: %w", err)
		}
		formIDs = append(formIDs, id)
	}

	r.logger.Database().Info("Loaded form IDs from database", "count", len(formIDs), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return formIDs, rows.Err()
}

func (r *FormRepository) loadFromDB(id string) (*content.FormNode, error) {
	query := `SELECT id, title, slug, notify_email, fields, is_active, created, changed FROM forms WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading form from database", "id", id)

	row := r.db.QueryRow(query, id)

	form, err := scanForm(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan form", "error", err.Error(), "id", id)
		return nil, err
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return form, nil
}

func (r *FormRepository) loadFromDBBySlug(slug string) (*content.FormNode, error) {
	query := `SELECT id, title, slug, notify_email, fields, is_active, created, changed FROM forms WHERE slug = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading form from database by slug", "slug", slug)

	row := r.db.QueryRow(query, slug)

	form, err := scanForm(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan form by slug", "error", err.Error(), "slug", slug)
		return nil, err
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return form, nil
}

func (r *FormRepository) loadMultipleFromDB(ids []string) ([]*content.FormNode, error) {
	if len(ids) == 0 {
		return []*content.FormNode{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := `SELECT id, title, slug, notify_email, fields, is_active, created, changed
              FROM forms WHERE id IN (` + strings.Join(placeholders, ",") + `)`

	start := time.Now()
	r.logger.Database().Debug("Loading multiple forms from database", "count", len(ids))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query multiple forms", "error", err.Error(), "count", len(ids))
		return nil, fmt.Errorf("failed to query forms: %w", err)
	}
	defer rows.Close()

	var forms []*content.FormNode
	for rows.Next() {
		form, err := scanForm(rows)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return forms, rows.Err()
}

func scanForm(row rowScanner) (*content.FormNode, error) {
	var form content.FormNode
	var fieldsStr string
	var changed sql.NullTime

	err := row.Scan(&form.ID, &form.Title, &form.Slug, &form.NotifyEmail, &fieldsStr, &form.IsActive, &form.Created, &changed)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(fieldsStr), &form.Fields); err != nil {
		return nil, fmt.Errorf("failed to parse form fields payload: %w", err)
	}
	if changed.Valid {
		form.Changed = &changed.Time
	}

	form.NodeType = "Form"
	return &form, nil
}
