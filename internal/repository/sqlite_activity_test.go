package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/alexanderramin/xerplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, ctx context.Context, repo *SQLiteProjectRepo) *domain.Project {
	t.Helper()
	proj := testutil.NewTestProject("Activities")
	require.NoError(t, repo.Create(ctx, proj))
	return proj
}

func TestActivityRepo_CreateBatchAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, ctx, NewSQLiteProjectRepo(db))
	wbsRepo := NewSQLiteWBSRepo(db)
	repo := NewSQLiteActivityRepo(db)

	node := testutil.NewTestWBSNode(proj.ID, "Civil")
	require.NoError(t, wbsRepo.Create(ctx, node))

	start := time.Date(2024, 2, 5, 8, 0, 0, 0, time.UTC)
	a := testutil.NewTestActivity(proj.ID, "A1000",
		testutil.WithWBSNode(node.ID),
		testutil.WithStatus(domain.ActivityInProgress),
		testutil.WithTotalFloat(0),
		testutil.WithRemainingDuration(16),
		testutil.WithEarlyStart(start),
	)
	a.DrivingPath = true
	a.PercentComplete = 40
	b := testutil.NewTestActivity(proj.ID, "A1010")
	require.NoError(t, repo.CreateBatch(ctx, []*domain.Activity{a, b}))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A1000", got.Code)
	assert.Equal(t, domain.ActivityInProgress, got.Status)
	require.NotNil(t, got.WBSNodeID)
	assert.Equal(t, node.ID, *got.WBSNodeID)
	require.NotNil(t, got.EarlyStart)
	assert.True(t, start.Equal(*got.EarlyStart))
	require.NotNil(t, got.TotalFloatHrs)
	assert.Equal(t, 0.0, *got.TotalFloatHrs)
	assert.Equal(t, 16.0, *got.RemainingDurationHrs)
	assert.Nil(t, got.FreeFloatHrs)
	assert.True(t, got.DrivingPath)
	assert.Equal(t, 40.0, got.PercentComplete)

	other, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, other.WBSNodeID)
	assert.Nil(t, other.TotalFloatHrs)
}

func TestActivityRepo_CreateBatch_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)
	assert.NoError(t, repo.CreateBatch(context.Background(), nil))
}

func TestActivityRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepo_ListByProject_OrderedByEarlyStart(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, ctx, NewSQLiteProjectRepo(db))
	repo := NewSQLiteActivityRepo(db)

	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	late := testutil.NewTestActivity(proj.ID, "A3", testutil.WithEarlyStart(day.AddDate(0, 0, 5)))
	early := testutil.NewTestActivity(proj.ID, "A2", testutil.WithEarlyStart(day))
	undated := testutil.NewTestActivity(proj.ID, "A1")
	require.NoError(t, repo.CreateBatch(ctx, []*domain.Activity{late, undated, early}))

	list, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"A2", "A3", "A1"}, []string{list[0].Code, list[1].Code, list[2].Code})
}

func TestActivityRepo_ListCritical(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, ctx, NewSQLiteProjectRepo(db))
	repo := NewSQLiteActivityRepo(db)

	require.NoError(t, repo.CreateBatch(ctx, []*domain.Activity{
		testutil.NewTestActivity(proj.ID, "ZERO", testutil.WithTotalFloat(0)),
		testutil.NewTestActivity(proj.ID, "NEG", testutil.WithTotalFloat(-16)),
		testutil.NewTestActivity(proj.ID, "POS", testutil.WithTotalFloat(8)),
		testutil.NewTestActivity(proj.ID, "NONE"),
	}))

	crit, err := repo.ListCritical(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, crit, 2)
	assert.Equal(t, "NEG", crit[0].Code)
	assert.Equal(t, "ZERO", crit[1].Code)
}

func TestActivityRepo_SourceIDMapAndCounts(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, ctx, NewSQLiteProjectRepo(db))
	repo := NewSQLiteActivityRepo(db)

	a := testutil.NewTestActivity(proj.ID, "A", testutil.WithSourceTaskID("100"))
	b := testutil.NewTestActivity(proj.ID, "B", testutil.WithSourceTaskID("200"),
		testutil.WithStatus(domain.ActivityCompleted))
	c := testutil.NewTestActivity(proj.ID, "C", testutil.WithSourceTaskID("300"),
		testutil.WithStatus(domain.ActivityCompleted))
	require.NoError(t, repo.CreateBatch(ctx, []*domain.Activity{a, b, c}))

	ids, err := repo.SourceIDMap(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"100": a.ID, "200": b.ID, "300": c.ID}, ids)

	counts, err := repo.CountByStatus(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[domain.ActivityNotStarted])
	assert.Equal(t, 2, counts[domain.ActivityCompleted])
	assert.Equal(t, 0, counts[domain.ActivityInProgress])

	n, err := repo.DeleteByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestActivityRepo_RejectsUnknownStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, ctx, NewSQLiteProjectRepo(db))
	repo := NewSQLiteActivityRepo(db)

	bad := testutil.NewTestActivity(proj.ID, "BAD", testutil.WithStatus("paused"))
	assert.Error(t, repo.CreateBatch(ctx, []*domain.Activity{bad}))
}
