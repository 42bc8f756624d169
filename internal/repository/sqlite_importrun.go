package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/xerplan/internal/db"
	"github.com/alexanderramin/xerplan/internal/domain"
)

// SQLiteImportRunRepo implements ImportRunRepo using a SQLite database.
// Warnings are stored newline-joined.
type SQLiteImportRunRepo struct {
	db db.DBTX
}

func NewSQLiteImportRunRepo(conn db.DBTX) *SQLiteImportRunRepo {
	return &SQLiteImportRunRepo{db: conn}
}

func (r *SQLiteImportRunRepo) Create(ctx context.Context, run *domain.ImportRun) error {
	query := `INSERT INTO import_runs (id, project_id, file_name, xer_version, wbs_count, activity_count,
		relationship_count, skipped_relationships, warnings, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.ProjectID,
		run.FileName,
		run.XERVersion,
		run.WBSCount,
		run.ActivityCount,
		run.RelationshipCount,
		run.SkippedRelationships,
		strings.Join(run.Warnings, "\n"),
		formatTime(run.ImportedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting import run: %w", err)
	}
	return nil
}

// ListByProject returns the newest runs first. A non-positive limit returns
// every run.
func (r *SQLiteImportRunRepo) ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.ImportRun, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, project_id, file_name, xer_version, wbs_count, activity_count,
		relationship_count, skipped_relationships, warnings, imported_at
		FROM import_runs WHERE project_id = ? ORDER BY imported_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing import runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.ImportRun
	for rows.Next() {
		var run domain.ImportRun
		var warnings, importedAt string
		if err := rows.Scan(&run.ID, &run.ProjectID, &run.FileName, &run.XERVersion,
			&run.WBSCount, &run.ActivityCount, &run.RelationshipCount, &run.SkippedRelationships,
			&warnings, &importedAt); err != nil {
			return nil, fmt.Errorf("scanning import run: %w", err)
		}
		if warnings != "" {
			run.Warnings = strings.Split(warnings, "\n")
		}
		if run.ImportedAt, err = parseTime(importedAt); err != nil {
			return nil, fmt.Errorf("parsing imported_at: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating import runs: %w", err)
	}
	return runs, nil
}
