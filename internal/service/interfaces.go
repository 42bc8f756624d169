package service

import (
	"context"
	"time"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/alexanderramin/xerplan/internal/importer"
	"github.com/alexanderramin/xerplan/internal/xer"
)

// ErrNoActivities is returned when an upload yields no activities.
var ErrNoActivities = importer.ErrNoActivities

// ImportOptions controls one import. An empty ProjectID targets the project
// previously imported from the same proj_id, or a new project.
type ImportOptions struct {
	ProjectID string
	Strict    bool
	FileName  string
}

// ImportResult holds the outcome of a schedule import.
type ImportResult struct {
	Project              *domain.Project
	Created              bool
	XERVersion           string
	WBSCount             int
	ActivityCount        int
	RelationshipCount    int
	SkippedRelationships int
	OrphanedWBS          int
	Warnings             []string
}

// ImportTarget is the project an import would replace, if any.
type ImportTarget struct {
	Project    *domain.Project
	Activities int
}

type ImportService interface {
	ImportFile(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error)
	ImportContent(ctx context.Context, content string, opts ImportOptions) (*ImportResult, error)
	ImportParsed(ctx context.Context, res *xer.ParseResult, opts ImportOptions) (*ImportResult, error)
	ResolveTarget(ctx context.Context, res *xer.ParseResult, projectID string) (*ImportTarget, error)
}

// ScheduleSummary aggregates one project's imported schedule.
type ScheduleSummary struct {
	Project           *domain.Project
	ActivityCount     int
	ByStatus          map[domain.ActivityStatus]int
	CriticalCount     int
	RelationshipCount int
	RemainingWorkdays float64
	HoursPerDay       float64
	DataDate          *time.Time
	LastImport        *domain.ImportRun
}

// PercentComplete is the share of completed activities, 0 to 100.
func (s *ScheduleSummary) PercentComplete() float64 {
	if s.ActivityCount == 0 {
		return 0
	}
	return float64(s.ByStatus[domain.ActivityCompleted]) / float64(s.ActivityCount) * 100
}

type ScheduleService interface {
	ListActivities(ctx context.Context, projectID string) ([]*domain.Activity, error)
	ListWBS(ctx context.Context, projectID string) ([]*domain.WBSNode, error)
	CriticalPath(ctx context.Context, projectID string) ([]*domain.Activity, error)
	Summary(ctx context.Context, projectID string, hoursPerDay float64) (*ScheduleSummary, error)
}

type ProjectService interface {
	List(ctx context.Context) ([]*domain.Project, error)
	Get(ctx context.Context, ref string) (*domain.Project, error)
	Delete(ctx context.Context, ref string) error
	RecentImports(ctx context.Context, projectID string, limit int) ([]*domain.ImportRun, error)
}
