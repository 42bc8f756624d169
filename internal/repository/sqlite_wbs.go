package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/xerplan/internal/db"
	"github.com/alexanderramin/xerplan/internal/domain"
)

const wbsColumns = `id, project_id, parent_id, source_wbs_id, short_code, name, sort_order, created_at`

// SQLiteWBSRepo implements WBSRepo using a SQLite database.
type SQLiteWBSRepo struct {
	db db.DBTX
}

func NewSQLiteWBSRepo(conn db.DBTX) *SQLiteWBSRepo {
	return &SQLiteWBSRepo{db: conn}
}

func (r *SQLiteWBSRepo) Create(ctx context.Context, n *domain.WBSNode) error {
	query := `INSERT INTO wbs_nodes (` + wbsColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.ProjectID,
		n.ParentID, // *string: nil becomes SQL NULL
		n.SourceWBSID,
		n.ShortCode,
		n.Name,
		n.SortOrder,
		formatTime(n.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting wbs node %s: %w", n.SourceWBSID, err)
	}
	return nil
}

func (r *SQLiteWBSRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.WBSNode, error) {
	query := `SELECT ` + wbsColumns + ` FROM wbs_nodes WHERE project_id = ? ORDER BY sort_order, created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing wbs nodes: %w", err)
	}
	defer rows.Close()

	var nodes []*domain.WBSNode
	for rows.Next() {
		var n domain.WBSNode
		var parentID sql.NullString
		var createdAt string
		if err := rows.Scan(&n.ID, &n.ProjectID, &parentID, &n.SourceWBSID,
			&n.ShortCode, &n.Name, &n.SortOrder, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning wbs node: %w", err)
		}
		if parentID.Valid {
			n.ParentID = &parentID.String
		}
		if n.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		nodes = append(nodes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating wbs nodes: %w", err)
	}
	return nodes, nil
}

// DeleteByProject removes every WBS node of the project and returns the
// number of rows deleted.
func (r *SQLiteWBSRepo) DeleteByProject(ctx context.Context, projectID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM wbs_nodes WHERE project_id = ?`, projectID)
	if err != nil {
		return 0, fmt.Errorf("deleting wbs nodes: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
