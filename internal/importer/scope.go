package importer

import (
	"fmt"

	"github.com/alexanderramin/xerplan/internal/xer"
)

// Scope is the slice of a parse result that belongs to one imported project.
type Scope struct {
	Project   *xer.Project
	WBS       []xer.WBS
	Tasks     []xer.Task
	TaskPreds []xer.TaskPred
	Warnings  []string
}

// SelectScope picks the first PROJECT row and keeps only the WBS nodes,
// tasks and links that belong to it. Rows with an empty proj_id are kept.
// A file without PROJECT rows is imported whole.
func SelectScope(res *xer.ParseResult) *Scope {
	s := &Scope{}
	if len(res.Projects) == 0 {
		s.WBS = res.WBS
		s.Tasks = res.Tasks
		s.TaskPreds = res.TaskPreds
		return s
	}

	first := res.Projects[0]
	s.Project = &first
	if len(res.Projects) > 1 {
		s.Warnings = append(s.Warnings, fmt.Sprintf(
			"file carries %d projects; importing %s only", len(res.Projects), projectLabel(first)))
	}

	belongs := func(projID string) bool {
		return projID == "" || first.ProjectID == "" || projID == first.ProjectID
	}

	var dropped int
	for _, w := range res.WBS {
		if belongs(w.ProjectID) {
			s.WBS = append(s.WBS, w)
		} else {
			dropped++
		}
	}
	for _, t := range res.Tasks {
		if belongs(t.ProjectID) {
			s.Tasks = append(s.Tasks, t)
		} else {
			dropped++
		}
	}
	for _, p := range res.TaskPreds {
		if belongs(p.ProjectID) {
			s.TaskPreds = append(s.TaskPreds, p)
		} else {
			dropped++
		}
	}
	if dropped > 0 {
		s.Warnings = append(s.Warnings, fmt.Sprintf("skipped %d rows from other projects", dropped))
	}
	return s
}

func projectLabel(p xer.Project) string {
	if p.ShortName != "" {
		return p.ShortName
	}
	return p.ProjectID
}
