package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is not idempotent in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id                TEXT PRIMARY KEY,
		source_project_id TEXT NOT NULL DEFAULT '',
		short_name        TEXT NOT NULL DEFAULT '',
		plan_start        TEXT,
		plan_end          TEXT,
		data_date         TEXT,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_source ON projects(source_project_id)`,

	`CREATE TABLE IF NOT EXISTS wbs_nodes (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		parent_id     TEXT REFERENCES wbs_nodes(id) ON DELETE CASCADE,
		source_wbs_id TEXT NOT NULL DEFAULT '',
		short_code    TEXT NOT NULL DEFAULT '',
		name          TEXT NOT NULL DEFAULT '',
		sort_order    REAL NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_wbs_nodes_project ON wbs_nodes(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_wbs_nodes_parent ON wbs_nodes(parent_id)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id                     TEXT PRIMARY KEY,
		project_id             TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		wbs_node_id            TEXT REFERENCES wbs_nodes(id) ON DELETE SET NULL,
		source_task_id         TEXT NOT NULL DEFAULT '',
		code                   TEXT NOT NULL DEFAULT '',
		name                   TEXT NOT NULL DEFAULT '',
		status                 TEXT NOT NULL DEFAULT 'not_started'
		                       CHECK(status IN ('not_started','in_progress','completed')),
		status_raw             TEXT NOT NULL DEFAULT '',
		percent_complete       REAL NOT NULL DEFAULT 0,
		target_start           TEXT,
		target_finish          TEXT,
		actual_start           TEXT,
		actual_finish          TEXT,
		early_start            TEXT,
		early_finish           TEXT,
		late_start             TEXT,
		late_finish            TEXT,
		planned_duration_hrs   REAL,
		remaining_duration_hrs REAL,
		total_float_hrs        REAL,
		free_float_hrs         REAL,
		activity_type          TEXT NOT NULL DEFAULT '',
		driving_path           INTEGER NOT NULL DEFAULT 0,
		constraint_type        TEXT NOT NULL DEFAULT '',
		constraint_date        TEXT,
		created_at             TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_project ON activities(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_wbs ON activities(wbs_node_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_status ON activities(status)`,

	`CREATE TABLE IF NOT EXISTS relationships (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		predecessor_id TEXT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
		successor_id   TEXT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
		type           TEXT NOT NULL DEFAULT 'FS'
		               CHECK(type IN ('FS','SS','FF','SF')),
		lag_hrs        REAL NOT NULL DEFAULT 0,
		source_id      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_relationships_project ON relationships(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_relationships_successor ON relationships(successor_id)`,

	`CREATE TABLE IF NOT EXISTS import_runs (
		id                    TEXT PRIMARY KEY,
		project_id            TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		file_name             TEXT NOT NULL DEFAULT '',
		wbs_count             INTEGER NOT NULL DEFAULT 0,
		activity_count        INTEGER NOT NULL DEFAULT 0,
		relationship_count    INTEGER NOT NULL DEFAULT 0,
		skipped_relationships INTEGER NOT NULL DEFAULT 0,
		warnings              TEXT NOT NULL DEFAULT '',
		imported_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_import_runs_project ON import_runs(project_id, imported_at)`,

	// Header version of the XER file each run came from.
	`ALTER TABLE import_runs ADD COLUMN xer_version TEXT NOT NULL DEFAULT ''`,
}
