package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/xerplan/internal/db"
	"github.com/alexanderramin/xerplan/internal/domain"
)

const relationshipColumns = `id, project_id, predecessor_id, successor_id, type, lag_hrs, source_id`

// SQLiteRelationshipRepo implements RelationshipRepo using a SQLite database.
type SQLiteRelationshipRepo struct {
	db db.DBTX
}

func NewSQLiteRelationshipRepo(conn db.DBTX) *SQLiteRelationshipRepo {
	return &SQLiteRelationshipRepo{db: conn}
}

func (r *SQLiteRelationshipRepo) CreateBatch(ctx context.Context, rels []*domain.Relationship) error {
	if len(rels) == 0 {
		return nil
	}
	stmt, err := r.db.PrepareContext(ctx, `INSERT INTO relationships (`+relationshipColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing relationship insert: %w", err)
	}
	defer stmt.Close()

	for _, rel := range rels {
		if _, err := stmt.ExecContext(ctx,
			rel.ID, rel.ProjectID, rel.PredecessorID, rel.SuccessorID,
			string(rel.Type), rel.LagHrs, rel.SourceID,
		); err != nil {
			return fmt.Errorf("inserting relationship %s: %w", rel.SourceID, err)
		}
	}
	return nil
}

func (r *SQLiteRelationshipRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Relationship, error) {
	query := `SELECT ` + relationshipColumns + ` FROM relationships WHERE project_id = ? ORDER BY source_id`
	return r.list(ctx, query, projectID)
}

func (r *SQLiteRelationshipRepo) ListPredecessors(ctx context.Context, activityID string) ([]*domain.Relationship, error) {
	query := `SELECT ` + relationshipColumns + ` FROM relationships WHERE successor_id = ? ORDER BY source_id`
	return r.list(ctx, query, activityID)
}

func (r *SQLiteRelationshipRepo) CountByProject(ctx context.Context, projectID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM relationships WHERE project_id = ?`, projectID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting relationships: %w", err)
	}
	return n, nil
}

func (r *SQLiteRelationshipRepo) DeleteByProject(ctx context.Context, projectID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM relationships WHERE project_id = ?`, projectID)
	if err != nil {
		return 0, fmt.Errorf("deleting relationships: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *SQLiteRelationshipRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Relationship, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing relationships: %w", err)
	}
	defer rows.Close()

	var out []*domain.Relationship
	for rows.Next() {
		var rel domain.Relationship
		var relType string
		if err := rows.Scan(&rel.ID, &rel.ProjectID, &rel.PredecessorID, &rel.SuccessorID,
			&relType, &rel.LagHrs, &rel.SourceID); err != nil {
			return nil, fmt.Errorf("scanning relationship: %w", err)
		}
		rel.Type = domain.RelationType(relType)
		out = append(out, &rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relationships: %w", err)
	}
	return out, nil
}
