package database

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// InitSchema brings up the catalog tables if they don't exist yet. The
// catalog itself is seeded externally (CSV/PDF import scripts write Book
// rows directly), so a startup bootstrap replaces migration tooling.
func InitSchema(ctx context.Context, db bun.IDB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS books (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			year INTEGER,
			genre TEXT,
			file_path TEXT,
			pages INTEGER,
			progress INTEGER,
			completed_date TIMESTAMPTZ,
			rating INTEGER,
			language TEXT,
			format TEXT,
			source TEXT,
			notes TEXT,
			status TEXT NOT NULL DEFAULT 'not_started'
		)`,
		`CREATE TABLE IF NOT EXISTS reading_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			book_id INTEGER NOT NULL REFERENCES books (id),
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			start_page INTEGER,
			end_page INTEGER,
			location TEXT,
			reading_format TEXT,
			comprehension_rating INTEGER,
			energy_level INTEGER,
			distractions BOOLEAN,
			notes TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS reading_sessions_book_id_idx ON reading_sessions (book_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to initialize schema")
		}
	}

	return nil
}
