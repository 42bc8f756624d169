package importer

import (
	"testing"
	"time"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/alexanderramin/xerplan/internal/xer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var importTime = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func TestNewProject(t *testing.T) {
	dd := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	p := NewProject(&xer.Project{ProjectID: "77", ShortName: "TOWER", DataDate: &dd}, importTime)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "77", p.SourceProjectID)
	assert.Equal(t, "TOWER", p.ShortName)
	assert.Equal(t, &dd, p.DataDate)
	assert.Equal(t, importTime, p.CreatedAt)
}

func TestNewProject_Fallbacks(t *testing.T) {
	assert.Equal(t, "77", NewProject(&xer.Project{ProjectID: "77"}, importTime).ShortName)
	assert.Equal(t, untitledProject, NewProject(nil, importTime).ShortName)
}

func TestApplyProject_KeepsExistingName(t *testing.T) {
	p := &domain.Project{ID: "p", ShortName: "Renamed"}
	ApplyProject(p, &xer.Project{ProjectID: "77"}, importTime)

	assert.Equal(t, "Renamed", p.ShortName)
	assert.Equal(t, "77", p.SourceProjectID)
	assert.Equal(t, importTime, p.UpdatedAt)
}

func TestConvertWBS_RemapsParents(t *testing.T) {
	ordered := OrderWBS([]xer.WBS{
		wbs("10", nil, 0),
		wbs("11", ptrStr("10"), 0),
		wbs("12", ptrStr("999"), 0),
	})

	plan := ConvertWBS("proj", ordered, importTime)
	require.Len(t, plan.Nodes, 3)
	assert.Equal(t, 1, plan.Orphaned)

	byCode := map[string]*domain.WBSNode{}
	for _, n := range plan.Nodes {
		byCode[n.SourceWBSID] = n
		assert.Equal(t, "proj", n.ProjectID)
		assert.Equal(t, n.ID, plan.IDs[n.SourceWBSID])
	}
	assert.True(t, byCode["10"].IsRoot())
	require.NotNil(t, byCode["11"].ParentID)
	assert.Equal(t, byCode["10"].ID, *byCode["11"].ParentID)
	assert.True(t, byCode["12"].IsRoot(), "orphan stored as root")
}

func TestConvertActivities(t *testing.T) {
	tf := 0.0
	tasks := []xer.Task{
		{TaskID: "1", WBSID: ptrStr("10"), ActivityCode: "A100", Name: "Pour", StatusRaw: "TK_Active",
			TotalFloatHrs: &tf, ActivityType: ptrStr("TT_Task"), DrivingPathFlag: true},
		{TaskID: "2", WBSID: ptrStr("missing"), ActivityCode: "A110", StatusRaw: "TK_Complete"},
		{TaskID: "3", ActivityCode: "A120", StatusRaw: "??"},
	}

	acts := ConvertActivities("proj", tasks, map[string]string{"10": "node-uuid"}, importTime)
	require.Len(t, acts, 3)

	require.NotNil(t, acts[0].WBSNodeID)
	assert.Equal(t, "node-uuid", *acts[0].WBSNodeID)
	assert.Equal(t, domain.ActivityInProgress, acts[0].Status)
	assert.Equal(t, "TK_Active", acts[0].StatusRaw)
	assert.Equal(t, "TT_Task", acts[0].ActivityType)
	assert.True(t, acts[0].DrivingPath)
	assert.True(t, acts[0].IsCritical())

	assert.Nil(t, acts[1].WBSNodeID)
	assert.Equal(t, domain.ActivityCompleted, acts[1].Status)
	assert.Equal(t, domain.ActivityNotStarted, acts[2].Status)
	assert.Equal(t, "", acts[2].ConstraintType)
}

func TestConvertRelationships_SkipsUnresolved(t *testing.T) {
	ids := map[string]string{"1": "a", "2": "b"}
	preds := []xer.TaskPred{
		{ID: "L1", TaskID: "2", PredecessorTaskID: "1", PredType: "PR_SS", LagHrs: 4},
		{ID: "L2", TaskID: "2", PredecessorTaskID: "404", PredType: "PR_FS"},
		{ID: "L3", TaskID: "404", PredecessorTaskID: "1", PredType: "PR_FS"},
	}

	rels, skipped := ConvertRelationships("proj", preds, ids)
	assert.Equal(t, 2, skipped)
	require.Len(t, rels, 1)
	assert.Equal(t, "a", rels[0].PredecessorID)
	assert.Equal(t, "b", rels[0].SuccessorID)
	assert.Equal(t, domain.RelationStartStart, rels[0].Type)
	assert.Equal(t, 4.0, rels[0].LagHrs)
	assert.Equal(t, "L1", rels[0].SourceID)
}
