package testutil

import (
	"time"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithSourceProjectID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.SourceProjectID = id
	}
}

func WithDataDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.DataDate = &d
	}
}

func WithPlanWindow(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.PlanStart = &start
		p.PlanEnd = &end
	}
}

func NewTestProject(shortName string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Project{
		ID:        uuid.New().String(),
		ShortName: shortName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WBS options
type WBSOption func(*domain.WBSNode)

func WithParent(id string) WBSOption {
	return func(n *domain.WBSNode) {
		n.ParentID = &id
	}
}

func WithSortOrder(order float64) WBSOption {
	return func(n *domain.WBSNode) {
		n.SortOrder = order
	}
}

func NewTestWBSNode(projectID, name string, opts ...WBSOption) *domain.WBSNode {
	n := &domain.WBSNode{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		SourceWBSID: "W-" + name,
		ShortCode:   name,
		Name:        name,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithWBSNode(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.WBSNodeID = &id
	}
}

func WithStatus(s domain.ActivityStatus) ActivityOption {
	return func(a *domain.Activity) {
		a.Status = s
	}
}

func WithTotalFloat(hrs float64) ActivityOption {
	return func(a *domain.Activity) {
		a.TotalFloatHrs = &hrs
	}
}

func WithRemainingDuration(hrs float64) ActivityOption {
	return func(a *domain.Activity) {
		a.RemainingDurationHrs = &hrs
	}
}

func WithEarlyStart(d time.Time) ActivityOption {
	return func(a *domain.Activity) {
		a.EarlyStart = &d
	}
}

func WithSourceTaskID(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.SourceTaskID = id
	}
}

func NewTestActivity(projectID, code string, opts ...ActivityOption) *domain.Activity {
	a := &domain.Activity{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		SourceTaskID: "T-" + code,
		Code:         code,
		Name:         "Activity " + code,
		Status:       domain.ActivityNotStarted,
		StatusRaw:    "TK_NotStart",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func NewTestRelationship(projectID, predecessorID, successorID string, relType domain.RelationType) *domain.Relationship {
	return &domain.Relationship{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		PredecessorID: predecessorID,
		SuccessorID:   successorID,
		Type:          relType,
		SourceID:      "L-" + predecessorID[:8],
	}
}
