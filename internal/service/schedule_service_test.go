package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/alexanderramin/xerplan/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importTower(t *testing.T, r repos) *domain.Project {
	t.Helper()
	res, err := r.importService().ImportContent(context.Background(), towerXER(), ImportOptions{FileName: "tower.xer"})
	require.NoError(t, err)
	return res.Project
}

func codes(acts []*domain.Activity) []string {
	out := make([]string, len(acts))
	for i, a := range acts {
		out[i] = a.Code
	}
	return out
}

func TestListActivities_ByEarlyStart(t *testing.T) {
	r := setupRepos(t)
	proj := importTower(t, r)

	acts, err := r.scheduleService().ListActivities(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1000", "A1020", "A1010"}, codes(acts))
}

func TestListActivities_UnknownProject(t *testing.T) {
	r := setupRepos(t)
	_, err := r.scheduleService().ListActivities(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCriticalPath(t *testing.T) {
	r := setupRepos(t)
	proj := importTower(t, r)
	obs := &recordingObserver{}

	crit, err := r.scheduleService(obs).CriticalPath(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1020", "A1000"}, codes(crit))

	ev := obs.last()
	assert.Equal(t, UseCaseCriticalPath, ev.Name)
	assert.Equal(t, 2, ev.Fields["count"])
}

func TestSummary(t *testing.T) {
	r := setupRepos(t)
	proj := importTower(t, r)

	sum, err := r.scheduleService().Summary(context.Background(), proj.ID, 8)
	require.NoError(t, err)

	assert.Equal(t, proj.ID, sum.Project.ID)
	assert.Equal(t, 3, sum.ActivityCount)
	assert.Equal(t, 1, sum.ByStatus[domain.ActivityCompleted])
	assert.Equal(t, 1, sum.ByStatus[domain.ActivityInProgress])
	assert.Equal(t, 1, sum.ByStatus[domain.ActivityNotStarted])
	assert.Equal(t, 2, sum.CriticalCount)
	assert.Equal(t, 2, sum.RelationshipCount)
	assert.InDelta(t, 12.0, sum.RemainingWorkdays, 1e-9)
	assert.InDelta(t, 100.0/3, sum.PercentComplete(), 1e-9)
	require.NotNil(t, sum.DataDate)
	require.NotNil(t, sum.LastImport)
	assert.Equal(t, "tower.xer", sum.LastImport.FileName)
}

func TestSummary_HoursPerDay(t *testing.T) {
	r := setupRepos(t)
	proj := importTower(t, r)
	svc := r.scheduleService()

	ten, err := svc.Summary(context.Background(), proj.ID, 10)
	require.NoError(t, err)
	assert.InDelta(t, 9.6, ten.RemainingWorkdays, 1e-9)

	fallback, err := svc.Summary(context.Background(), proj.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 8.0, fallback.HoursPerDay)
	assert.InDelta(t, 12.0, fallback.RemainingWorkdays, 1e-9)
}

func TestSummary_EmptyProject(t *testing.T) {
	sum := summarize(&domain.Project{ID: "p"}, nil, 8)
	assert.Zero(t, sum.ActivityCount)
	assert.Zero(t, sum.PercentComplete())
	assert.Len(t, sum.ByStatus, 3)
}

func TestListWBS(t *testing.T) {
	r := setupRepos(t)
	proj := importTower(t, r)

	nodes, err := r.scheduleService().ListWBS(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Len(t, nodes, 4)

	_, err = r.scheduleService().ListWBS(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
