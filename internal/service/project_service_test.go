package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/xerplan/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_GetByIDOrSourceID(t *testing.T) {
	r := setupRepos(t)
	proj := importTower(t, r)
	svc := NewProjectService(r.projects, r.runs)
	ctx := context.Background()

	byID, err := svc.Get(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "TOWER", byID.ShortName)

	bySource, err := svc.Get(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, proj.ID, bySource.ID)

	_, err = svc.Get(ctx, "P404")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectService_DeleteCascades(t *testing.T) {
	r := setupRepos(t)
	proj := importTower(t, r)
	svc := NewProjectService(r.projects, r.runs)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "P1"))

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	acts, err := r.activities.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, acts)

	runs, err := svc.RecentImports(ctx, proj.ID, 5)
	require.NoError(t, err)
	assert.Empty(t, runs)

	assert.ErrorIs(t, svc.Delete(ctx, proj.ID), repository.ErrNotFound)
}

func TestProjectService_RecentImports(t *testing.T) {
	r := setupRepos(t)
	proj := importTower(t, r)
	svc := NewProjectService(r.projects, r.runs)

	runs, err := svc.RecentImports(context.Background(), proj.ID, 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 3, runs[0].ActivityCount)
	assert.Equal(t, 1, runs[0].SkippedRelationships)
}
