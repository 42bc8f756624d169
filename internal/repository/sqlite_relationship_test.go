package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/alexanderramin/xerplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationshipRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, ctx, NewSQLiteProjectRepo(db))
	actRepo := NewSQLiteActivityRepo(db)
	repo := NewSQLiteRelationshipRepo(db)

	a := testutil.NewTestActivity(proj.ID, "A")
	b := testutil.NewTestActivity(proj.ID, "B")
	c := testutil.NewTestActivity(proj.ID, "C")
	require.NoError(t, actRepo.CreateBatch(ctx, []*domain.Activity{a, b, c}))

	ab := testutil.NewTestRelationship(proj.ID, a.ID, b.ID, domain.RelationFinishStart)
	ab.SourceID = "1"
	ab.LagHrs = 8
	cb := testutil.NewTestRelationship(proj.ID, c.ID, b.ID, domain.RelationStartStart)
	cb.SourceID = "2"
	require.NoError(t, repo.CreateBatch(ctx, []*domain.Relationship{ab, cb}))

	all, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].PredecessorID)
	assert.Equal(t, 8.0, all[0].LagHrs)
	assert.Equal(t, domain.RelationStartStart, all[1].Type)

	preds, err := repo.ListPredecessors(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, preds, 2)

	preds, err = repo.ListPredecessors(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, preds)

	n, err := repo.CountByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRelationshipRepo_RequiresKnownActivities(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, ctx, NewSQLiteProjectRepo(db))
	actRepo := NewSQLiteActivityRepo(db)
	repo := NewSQLiteRelationshipRepo(db)

	a := testutil.NewTestActivity(proj.ID, "A")
	require.NoError(t, actRepo.CreateBatch(ctx, []*domain.Activity{a}))

	dangling := testutil.NewTestRelationship(proj.ID, a.ID, "00000000-missing", domain.RelationFinishStart)
	assert.Error(t, repo.CreateBatch(ctx, []*domain.Relationship{dangling}))
}

func TestRelationshipRepo_CascadeFromActivities(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := seedProject(t, ctx, NewSQLiteProjectRepo(db))
	actRepo := NewSQLiteActivityRepo(db)
	repo := NewSQLiteRelationshipRepo(db)

	a := testutil.NewTestActivity(proj.ID, "A")
	b := testutil.NewTestActivity(proj.ID, "B")
	require.NoError(t, actRepo.CreateBatch(ctx, []*domain.Activity{a, b}))
	require.NoError(t, repo.CreateBatch(ctx, []*domain.Relationship{
		testutil.NewTestRelationship(proj.ID, a.ID, b.ID, domain.RelationFinishFinish),
	}))

	_, err := actRepo.DeleteByProject(ctx, proj.ID)
	require.NoError(t, err)

	n, err := repo.CountByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
