package config

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate ensures the schema exists. Statements are shared between drivers;
// only the auto-increment column syntax differs. Timestamps are written by the
// application in UTC, so no SQL-side defaults are relied upon.
func Migrate(db *sqlx.DB, driver string) error {
	serial := "SERIAL PRIMARY KEY"
	if driver == "sqlite3" {
		serial = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS media (
			id TEXT PRIMARY KEY,
			file_name TEXT NOT NULL,
			file_url TEXT NOT NULL,
			title TEXT NOT NULL,
			caption TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT 'General',
			media_type TEXT NOT NULL,
			uploaded_at TIMESTAMP NOT NULL,
			file_size BIGINT NOT NULL,
			mime_type TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_media_category ON media (category)`,
		`CREATE INDEX IF NOT EXISTS idx_media_uploaded_at ON media (uploaded_at)`,

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS background_images (
			id %s,
			section_type TEXT NOT NULL,
			section_name TEXT NOT NULL,
			background_image_url TEXT NOT NULL,
			file_name TEXT NOT NULL,
			file_size BIGINT NOT NULL,
			mime_type TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			UNIQUE (section_type, section_name)
		)`, serial),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS text_content (
			id %s,
			key TEXT NOT NULL UNIQUE,
			value TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`, serial),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS quotations (
			id %s,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			event_date TEXT NOT NULL,
			location TEXT NOT NULL,
			message TEXT NOT NULL,
			service TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`, serial),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS reviews (
			id %s,
			client_name TEXT NOT NULL,
			email TEXT NOT NULL,
			rating INTEGER NOT NULL,
			comment TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`, serial),
		`CREATE INDEX IF NOT EXISTS idx_reviews_status ON reviews (status)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
