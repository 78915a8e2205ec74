package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// The parent_id self-reference uses ON DELETE RESTRICT: leaf-only deletion
// is a policy rule checked in the service layer, and the foreign key is the
// last line of defence against a non-leaf delete slipping through.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS auth_sessions (
		token      TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS areas (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		owner      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS processes (
		id                TEXT PRIMARY KEY,
		area_id           TEXT NOT NULL REFERENCES areas(id) ON DELETE CASCADE,
		parent_id         TEXT REFERENCES processes(id) ON DELETE RESTRICT,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		owner             TEXT NOT NULL DEFAULT '',
		systems_and_tools TEXT NOT NULL DEFAULT '',
		color             TEXT NOT NULL DEFAULT '',
		type              TEXT NOT NULL DEFAULT 'manual'
		                  CHECK(type IN ('manual','system')),
		position_x        REAL NOT NULL DEFAULT 0,
		position_y        REAL NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_processes_area ON processes(area_id)`,
	`CREATE INDEX IF NOT EXISTS idx_processes_parent ON processes(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_auth_sessions_user ON auth_sessions(user_id)`,
}
