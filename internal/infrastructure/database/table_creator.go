// Package database provides tenant instantiation
package database

import (
	"database/sql"
	"fmt"

	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/security"
)

// TableCreator handles the creation of the database schema for a new tenant.
type TableCreator struct{}

// NewTableCreator creates a new TableCreator.
func NewTableCreator() *TableCreator {
	return &TableCreator{}
}

// CreateSchema executes all necessary queries to build the tenant's database tables and indexes.
func (tc *TableCreator) CreateSchema(db *sql.DB) error {
	for _, tableSQL := range tables {
		if _, err := db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}

	for _, indexSQL := range indexes {
		if _, err := db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}

// SeedInitialContent adds the default content required for a new tenant to function.
func (tc *TableCreator) SeedInitialContent(db *sql.DB) error {
	// Idempotently create the tenant's seo settings row.
	var seoExists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM seo)").Scan(&seoExists)
	if err != nil {
		return fmt.Errorf("failed to check for seo row existence: %w", err)
	}

	if !seoExists {
		seoID := security.GenerateULID()
		_, err = db.Exec(`INSERT INTO seo (id, title, description, keywords, robots) VALUES (?, ?, ?, ?, ?)`,
			seoID, "My Site", "", "[]", "index,follow")
		if err != nil {
			return fmt.Errorf("failed to insert default seo row: %w", err)
		}
	}

	// Idempotently create the default contact form.
	var formExists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM forms WHERE slug = 'contact')").Scan(&formExists)
	if err != nil {
		return fmt.Errorf("failed to check for contact form existence: %w", err)
	}

	if !formExists {
		formID := security.GenerateULID()
		fieldsPayload := `[{"id":"` + security.GenerateULID() + `","label":"Name","name":"name","fieldType":"text","required":true,"sortOrder":0},` +
			`{"id":"` + security.GenerateULID() + `","label":"Email","name":"email","fieldType":"email","required":true,"sortOrder":1},` +
			`{"id":"` + security.GenerateULID() + `","label":"Message","name":"message","fieldType":"textarea","required":true,"sortOrder":2}]`
		_, err = db.Exec(`INSERT INTO forms (id, title, slug, notify_email, fields, is_active) VALUES (?, ?, ?, ?, ?, 1)`,
			formID, "Contact", "contact", "", fieldsPayload)
		if err != nil {
			return fmt.Errorf("failed to insert default contact form: %w", err)
		}
	}

	return nil
}

// Schema definitions for the tenant content tables
var tables = []string{
	`CREATE TABLE IF NOT EXISTS heroes (id TEXT PRIMARY KEY, page_id TEXT NOT NULL, title TEXT NOT NULL, subtitle TEXT, image_url TEXT, cta_label TEXT, cta_url TEXT, sort_order INTEGER NOT NULL, is_visible BOOLEAN NOT NULL DEFAULT 1, created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, changed TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS faqs (id TEXT PRIMARY KEY, category_id TEXT NOT NULL, question TEXT NOT NULL, answer TEXT NOT NULL, sort_order INTEGER NOT NULL, is_visible BOOLEAN NOT NULL DEFAULT 1)`,
	`CREATE TABLE IF NOT EXISTS ctas (id TEXT PRIMARY KEY, header_id TEXT NOT NULL, label TEXT NOT NULL, url TEXT NOT NULL, style TEXT NOT NULL, sort_order INTEGER NOT NULL, is_visible BOOLEAN NOT NULL DEFAULT 1)`,
	`CREATE TABLE IF NOT EXISTS forms (id TEXT PRIMARY KEY, title TEXT NOT NULL, slug TEXT NOT NULL UNIQUE, notify_email TEXT NOT NULL, fields TEXT NOT NULL, is_active BOOLEAN NOT NULL DEFAULT 1, created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, changed TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS media_sections (id TEXT PRIMARY KEY, page_id TEXT NOT NULL, title TEXT NOT NULL, media_url TEXT NOT NULL, media_type TEXT NOT NULL, caption TEXT, sort_order INTEGER NOT NULL, is_visible BOOLEAN NOT NULL DEFAULT 1)`,
	`CREATE TABLE IF NOT EXISTS seo (id TEXT PRIMARY KEY, title TEXT NOT NULL, description TEXT NOT NULL, keywords TEXT NOT NULL, og_image_url TEXT, canonical_base TEXT, robots TEXT NOT NULL, changed TIMESTAMP)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_heroes_page_id ON heroes(page_id)`,
	`CREATE INDEX IF NOT EXISTS idx_heroes_sort_order ON heroes(page_id, sort_order)`,
	`CREATE INDEX IF NOT EXISTS idx_faqs_category_id ON faqs(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_faqs_sort_order ON faqs(category_id, sort_order)`,
	`CREATE INDEX IF NOT EXISTS idx_ctas_header_id ON ctas(header_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ctas_sort_order ON ctas(header_id, sort_order)`,
	`CREATE INDEX IF NOT EXISTS idx_forms_slug ON forms(slug)`,
	`CREATE INDEX IF NOT EXISTS idx_media_sections_page_id ON media_sections(page_id)`,
	`CREATE INDEX IF NOT EXISTS idx_media_sections_sort_order ON media_sections(page_id, sort_order)`,
}
