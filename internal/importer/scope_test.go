package importer

import (
	"testing"

	"github.com/alexanderramin/xerplan/internal/xer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectScope_FirstProjectWins(t *testing.T) {
	res := &xer.ParseResult{
		Projects: []xer.Project{{ProjectID: "P1", ShortName: "TOWER"}, {ProjectID: "P2", ShortName: "PODIUM"}},
		WBS: []xer.WBS{
			{WBSID: "W1", ProjectID: "P1"},
			{WBSID: "W2", ProjectID: "P2"},
		},
		Tasks: []xer.Task{
			{TaskID: "T1", ProjectID: "P1"},
			{TaskID: "T2", ProjectID: "P2"},
			{TaskID: "T3", ProjectID: ""},
		},
		TaskPreds: []xer.TaskPred{
			{ID: "L1", ProjectID: "P1"},
			{ID: "L2", ProjectID: "P2"},
		},
	}

	s := SelectScope(res)
	require.NotNil(t, s.Project)
	assert.Equal(t, "P1", s.Project.ProjectID)
	assert.Len(t, s.WBS, 1)
	assert.Len(t, s.Tasks, 2, "rows without proj_id are kept")
	assert.Len(t, s.TaskPreds, 1)
	assert.Equal(t, []string{
		"file carries 2 projects; importing TOWER only",
		"skipped 3 rows from other projects",
	}, s.Warnings)
}

func TestSelectScope_SingleProjectNoWarnings(t *testing.T) {
	res := &xer.ParseResult{
		Projects: []xer.Project{{ProjectID: "P1"}},
		Tasks:    []xer.Task{{TaskID: "T1", ProjectID: "P1"}},
	}

	s := SelectScope(res)
	assert.Len(t, s.Tasks, 1)
	assert.Empty(t, s.Warnings)
}

func TestSelectScope_NoProjectTableKeepsEverything(t *testing.T) {
	res := &xer.ParseResult{
		Tasks: []xer.Task{{TaskID: "T1", ProjectID: "P1"}, {TaskID: "T2", ProjectID: "P2"}},
	}

	s := SelectScope(res)
	assert.Nil(t, s.Project)
	assert.Len(t, s.Tasks, 2)
	assert.Empty(t, s.Warnings)
}
