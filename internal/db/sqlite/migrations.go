package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Migration represents a database schema migration.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Migrations is the list of all database migrations in order.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "core_tables",
		SQL: `
			-- Students (who we match)
			CREATE TABLE IF NOT EXISTS students (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT,
				phone TEXT,
				parent_name TEXT,
				parent_email TEXT,
				parent_phone TEXT,
				grade_level TEXT,
				learning_style TEXT,
				subjects_needed TEXT,
				availability TEXT,
				max_hourly_rate REAL NOT NULL DEFAULT 0,
				sessions_per_week INTEGER NOT NULL DEFAULT 1,
				metrics TEXT,
				status TEXT CHECK(status IN ('active', 'inactive', 'graduated')) NOT NULL DEFAULT 'active',
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_students_status ON students(status);
			CREATE INDEX IF NOT EXISTS idx_students_email ON students(email);

			-- Tutors (who we match them with)
			CREATE TABLE IF NOT EXISTS tutors (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT,
				phone TEXT,
				subjects TEXT,
				hourly_rate REAL NOT NULL DEFAULT 0,
				experience_years REAL NOT NULL DEFAULT 0,
				availability TEXT,
				performance TEXT,
				status TEXT CHECK(status IN ('active', 'inactive', 'on-leave')) NOT NULL DEFAULT 'active',
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_tutors_status ON tutors(status);
			CREATE INDEX IF NOT EXISTS idx_tutors_email ON tutors(email);
		`,
	},
	{
		Version: 2,
		Name:    "weight_configs",
		SQL: `
			-- Singleton matching configuration, keyed by config type
			CREATE TABLE IF NOT EXISTS weight_configs (
				config_type TEXT PRIMARY KEY,
				weights TEXT NOT NULL,
				charge_percentage REAL NOT NULL DEFAULT 85,
				updated_by TEXT NOT NULL DEFAULT 'admin',
				updated_at TEXT NOT NULL
			);
		`,
	},
}

// runMigrations applies all pending migrations in order, tracking the
// applied versions in a schema_migrations table.
func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range Migrations {
		var exists int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.Version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if exists > 0 {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}

		log.Debug().Int("version", m.Version).Str("name", m.Name).Msg("Applied migration")
	}

	return nil
}
