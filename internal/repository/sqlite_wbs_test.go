package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/xerplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWBSRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	projRepo := NewSQLiteProjectRepo(db)
	repo := NewSQLiteWBSRepo(db)

	proj := testutil.NewTestProject("WBS")
	require.NoError(t, projRepo.Create(ctx, proj))

	root := testutil.NewTestWBSNode(proj.ID, "Root", testutil.WithSortOrder(1))
	require.NoError(t, repo.Create(ctx, root))
	child := testutil.NewTestWBSNode(proj.ID, "Child", testutil.WithParent(root.ID), testutil.WithSortOrder(0))
	require.NoError(t, repo.Create(ctx, child))

	nodes, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, "Child", nodes[0].Name, "sorted by sort_order")
	require.NotNil(t, nodes[0].ParentID)
	assert.Equal(t, root.ID, *nodes[0].ParentID)
	assert.True(t, nodes[1].IsRoot())
}

func TestWBSRepo_ParentMustExist(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	projRepo := NewSQLiteProjectRepo(db)
	repo := NewSQLiteWBSRepo(db)

	proj := testutil.NewTestProject("WBS")
	require.NoError(t, projRepo.Create(ctx, proj))

	orphan := testutil.NewTestWBSNode(proj.ID, "Orphan", testutil.WithParent("no-such-node"))
	assert.Error(t, repo.Create(ctx, orphan))
}

func TestWBSRepo_DeleteByProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	projRepo := NewSQLiteProjectRepo(db)
	repo := NewSQLiteWBSRepo(db)

	proj := testutil.NewTestProject("WBS")
	require.NoError(t, projRepo.Create(ctx, proj))
	root := testutil.NewTestWBSNode(proj.ID, "Root")
	require.NoError(t, repo.Create(ctx, root))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWBSNode(proj.ID, "Leaf", testutil.WithParent(root.ID))))

	n, err := repo.DeleteByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	nodes, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, nodes)
}
