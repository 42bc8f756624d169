package importer

import (
	"time"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/alexanderramin/xerplan/internal/xer"
	"github.com/google/uuid"
)

const untitledProject = "Imported schedule"

// NewProject builds a project record from the selected PROJECT row. src may
// be nil for files without a PROJECT table.
func NewProject(src *xer.Project, now time.Time) *domain.Project {
	p := &domain.Project{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	ApplyProject(p, src, now)
	if p.ShortName == "" {
		p.ShortName = untitledProject
	}
	return p
}

// ApplyProject refreshes the schedule-level fields of an existing project
// from a newly parsed PROJECT row.
func ApplyProject(p *domain.Project, src *xer.Project, now time.Time) {
	p.UpdatedAt = now
	if src == nil {
		return
	}
	p.SourceProjectID = src.ProjectID
	p.ShortName = domain.CoalesceStr(src.ShortName, p.ShortName, src.ProjectID, untitledProject)
	p.PlanStart = src.PlanStart
	p.PlanEnd = src.PlanEnd
	p.DataDate = src.DataDate
}

// WBSPlan holds WBS nodes ready to insert in order, plus the map from XER
// wbs_id to the new node id.
type WBSPlan struct {
	Nodes    []*domain.WBSNode
	IDs      map[string]string
	Orphaned int
}

// ConvertWBS assigns new ids to the ordered nodes and remaps parent links.
// Orphans are stored as roots.
func ConvertWBS(projectID string, ordered []OrderedWBS, now time.Time) *WBSPlan {
	plan := &WBSPlan{
		Nodes: make([]*domain.WBSNode, 0, len(ordered)),
		IDs:   make(map[string]string, len(ordered)),
	}
	for _, o := range ordered {
		node := &domain.WBSNode{
			ID:          uuid.New().String(),
			ProjectID:   projectID,
			SourceWBSID: o.WBSID,
			ShortCode:   o.ShortCode,
			Name:        o.Name,
			SortOrder:   o.SortOrder,
			CreatedAt:   now,
		}
		if o.Orphan {
			plan.Orphaned++
		} else if o.ParentWBSID != nil {
			if pid, ok := plan.IDs[*o.ParentWBSID]; ok {
				node.ParentID = &pid
			}
		}
		plan.IDs[o.WBSID] = node.ID
		plan.Nodes = append(plan.Nodes, node)
	}
	return plan
}

// ConvertActivities maps parsed tasks to activities. A task whose wbs_id is
// unknown keeps no WBS link.
func ConvertActivities(projectID string, tasks []xer.Task, wbsIDs map[string]string, now time.Time) []*domain.Activity {
	out := make([]*domain.Activity, 0, len(tasks))
	for _, t := range tasks {
		a := &domain.Activity{
			ID:                   uuid.New().String(),
			ProjectID:            projectID,
			SourceTaskID:         t.TaskID,
			Code:                 t.ActivityCode,
			Name:                 t.Name,
			Status:               xer.MapStatus(t.StatusRaw),
			StatusRaw:            t.StatusRaw,
			PercentComplete:      t.PercentComplete,
			TargetStart:          t.TargetStart,
			TargetFinish:         t.TargetFinish,
			ActualStart:          t.ActualStart,
			ActualFinish:         t.ActualFinish,
			EarlyStart:           t.EarlyStart,
			EarlyFinish:          t.EarlyFinish,
			LateStart:            t.LateStart,
			LateFinish:           t.LateFinish,
			PlannedDurationHrs:   t.PlannedDurationHrs,
			RemainingDurationHrs: t.RemainingDurationHrs,
			TotalFloatHrs:        t.TotalFloatHrs,
			FreeFloatHrs:         t.FreeFloatHrs,
			ActivityType:         domain.StrFromPtr(t.ActivityType),
			DrivingPath:          t.DrivingPathFlag,
			ConstraintType:       domain.StrFromPtr(t.ConstraintType),
			ConstraintDate:       t.ConstraintDate,
			CreatedAt:            now,
		}
		if t.WBSID != nil {
			if id, ok := wbsIDs[*t.WBSID]; ok {
				a.WBSNodeID = &id
			}
		}
		out = append(out, a)
	}
	return out
}

// ConvertRelationships resolves both endpoints of every link through taskIDs
// (XER task_id to activity id). Links with an unresolved endpoint are
// skipped and counted.
func ConvertRelationships(projectID string, preds []xer.TaskPred, taskIDs map[string]string) ([]*domain.Relationship, int) {
	var rels []*domain.Relationship
	skipped := 0
	for _, p := range preds {
		predID, okPred := taskIDs[p.PredecessorTaskID]
		succID, okSucc := taskIDs[p.TaskID]
		if !okPred || !okSucc {
			skipped++
			continue
		}
		rels = append(rels, &domain.Relationship{
			ID:            uuid.New().String(),
			ProjectID:     projectID,
			PredecessorID: predID,
			SuccessorID:   succID,
			Type:          xer.MapRelationType(p.PredType),
			LagHrs:        p.LagHrs,
			SourceID:      p.ID,
		})
	}
	return rels, skipped
}
