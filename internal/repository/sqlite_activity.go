package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/xerplan/internal/db"
	"github.com/alexanderramin/xerplan/internal/domain"
)

// activityColumns is the canonical column list for activities.
const activityColumns = `id, project_id, wbs_node_id, source_task_id, code, name, status, status_raw,
		percent_complete, target_start, target_finish, actual_start, actual_finish,
		early_start, early_finish, late_start, late_finish,
		planned_duration_hrs, remaining_duration_hrs, total_float_hrs, free_float_hrs,
		activity_type, driving_path, constraint_type, constraint_date, created_at`

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

// CreateBatch inserts activities through one prepared statement.
func (r *SQLiteActivityRepo) CreateBatch(ctx context.Context, activities []*domain.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	stmt, err := r.db.PrepareContext(ctx, `INSERT INTO activities (`+activityColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing activity insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range activities {
		_, err := stmt.ExecContext(ctx,
			a.ID,
			a.ProjectID,
			a.WBSNodeID,
			a.SourceTaskID,
			a.Code,
			a.Name,
			string(a.Status),
			a.StatusRaw,
			a.PercentComplete,
			nullableTimeToString(a.TargetStart),
			nullableTimeToString(a.TargetFinish),
			nullableTimeToString(a.ActualStart),
			nullableTimeToString(a.ActualFinish),
			nullableTimeToString(a.EarlyStart),
			nullableTimeToString(a.EarlyFinish),
			nullableTimeToString(a.LateStart),
			nullableTimeToString(a.LateFinish),
			nullableFloat(a.PlannedDurationHrs),
			nullableFloat(a.RemainingDurationHrs),
			nullableFloat(a.TotalFloatHrs),
			nullableFloat(a.FreeFloatHrs),
			a.ActivityType,
			boolToInt(a.DrivingPath),
			a.ConstraintType,
			nullableTimeToString(a.ConstraintDate),
			formatTime(a.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("inserting activity %s: %w", a.Code, err)
		}
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	a, err := scanActivity(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("activity: %w", ErrNotFound)
	}
	return a, err
}

func (r *SQLiteActivityRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE project_id = ?
		ORDER BY early_start IS NULL, early_start, code`
	return r.list(ctx, query, projectID)
}

// ListCritical returns activities with known, non-positive total float,
// most negative float first.
func (r *SQLiteActivityRepo) ListCritical(ctx context.Context, projectID string) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE project_id = ? AND total_float_hrs IS NOT NULL AND total_float_hrs <= 0
		ORDER BY total_float_hrs, early_start IS NULL, early_start, code`
	return r.list(ctx, query, projectID)
}

// SourceIDMap maps each stored activity's XER task_id to its surrogate id.
func (r *SQLiteActivityRepo) SourceIDMap(ctx context.Context, projectID string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT source_task_id, id FROM activities WHERE project_id = ?`, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading activity ids: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var source, id string
		if err := rows.Scan(&source, &id); err != nil {
			return nil, fmt.Errorf("scanning activity id: %w", err)
		}
		out[source] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity ids: %w", err)
	}
	return out, nil
}

func (r *SQLiteActivityRepo) CountByStatus(ctx context.Context, projectID string) (map[domain.ActivityStatus]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM activities WHERE project_id = ? GROUP BY status`, projectID)
	if err != nil {
		return nil, fmt.Errorf("counting activities: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ActivityStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning activity count: %w", err)
		}
		counts[domain.ActivityStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteActivityRepo) DeleteByProject(ctx context.Context, projectID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE project_id = ?`, projectID)
	if err != nil {
		return 0, fmt.Errorf("deleting activities: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *SQLiteActivityRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var out []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return out, nil
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var a domain.Activity
	var wbsNodeID sql.NullString
	var status, createdAt string
	var targetStart, targetFinish, actualStart, actualFinish sql.NullString
	var earlyStart, earlyFinish, lateStart, lateFinish, constraintDate sql.NullString
	var planned, remaining, totalFloat, freeFloat sql.NullFloat64
	var drivingPath int

	err := row.Scan(
		&a.ID, &a.ProjectID, &wbsNodeID, &a.SourceTaskID, &a.Code, &a.Name, &status, &a.StatusRaw,
		&a.PercentComplete, &targetStart, &targetFinish, &actualStart, &actualFinish,
		&earlyStart, &earlyFinish, &lateStart, &lateFinish,
		&planned, &remaining, &totalFloat, &freeFloat,
		&a.ActivityType, &drivingPath, &a.ConstraintType, &constraintDate, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	if wbsNodeID.Valid {
		a.WBSNodeID = &wbsNodeID.String
	}
	a.Status = domain.ActivityStatus(status)
	a.TargetStart = parseNullableTime(targetStart)
	a.TargetFinish = parseNullableTime(targetFinish)
	a.ActualStart = parseNullableTime(actualStart)
	a.ActualFinish = parseNullableTime(actualFinish)
	a.EarlyStart = parseNullableTime(earlyStart)
	a.EarlyFinish = parseNullableTime(earlyFinish)
	a.LateStart = parseNullableTime(lateStart)
	a.LateFinish = parseNullableTime(lateFinish)
	a.ConstraintDate = parseNullableTime(constraintDate)
	a.PlannedDurationHrs = floatFromNull(planned)
	a.RemainingDurationHrs = floatFromNull(remaining)
	a.TotalFloatHrs = floatFromNull(totalFloat)
	a.FreeFloatHrs = floatFromNull(freeFloat)
	a.DrivingPath = intToBool(drivingPath)

	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &a, nil
}
