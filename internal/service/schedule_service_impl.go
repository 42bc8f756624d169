package service

import (
	"context"
	"time"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/alexanderramin/xerplan/internal/repository"
	"github.com/alexanderramin/xerplan/internal/xer"
)

type scheduleService struct {
	projects      repository.ProjectRepo
	wbs           repository.WBSRepo
	activities    repository.ActivityRepo
	relationships repository.RelationshipRepo
	runs          repository.ImportRunRepo
	observer      UseCaseObserver
}

func NewScheduleService(
	projects repository.ProjectRepo,
	wbs repository.WBSRepo,
	activities repository.ActivityRepo,
	relationships repository.RelationshipRepo,
	runs repository.ImportRunRepo,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		projects:      projects,
		wbs:           wbs,
		activities:    activities,
		relationships: relationships,
		runs:          runs,
		observer:      useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *scheduleService) ListActivities(ctx context.Context, projectID string) (list []*domain.Activity, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID}
	defer func() {
		fields["count"] = len(list)
		s.observe(ctx, UseCaseListActivities, startedAt, err, fields)
	}()

	if _, err = s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.activities.ListByProject(ctx, projectID)
}

func (s *scheduleService) ListWBS(ctx context.Context, projectID string) ([]*domain.WBSNode, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.wbs.ListByProject(ctx, projectID)
}

// CriticalPath lists activities with non-positive total float, most negative
// first.
func (s *scheduleService) CriticalPath(ctx context.Context, projectID string) (list []*domain.Activity, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID}
	defer func() {
		fields["count"] = len(list)
		s.observe(ctx, UseCaseCriticalPath, startedAt, err, fields)
	}()

	if _, err = s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.activities.ListCritical(ctx, projectID)
}

// Summary aggregates the project's schedule. Remaining workdays sum the
// remaining duration of every activity that is not complete, converted with
// hoursPerDay (non-positive means xer.DefaultHoursPerDay).
func (s *scheduleService) Summary(ctx context.Context, projectID string, hoursPerDay float64) (sum *ScheduleSummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID}
	defer func() {
		s.observe(ctx, UseCaseScheduleSummary, startedAt, err, fields)
	}()

	if hoursPerDay <= 0 {
		hoursPerDay = xer.DefaultHoursPerDay
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	activities, err := s.activities.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	relCount, err := s.relationships.CountByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	runs, err := s.runs.ListByProject(ctx, projectID, 1)
	if err != nil {
		return nil, err
	}

	sum = summarize(project, activities, hoursPerDay)
	sum.RelationshipCount = relCount
	if len(runs) > 0 {
		sum.LastImport = runs[0]
	}
	fields["activities"] = sum.ActivityCount
	fields["critical"] = sum.CriticalCount
	fields["percent_complete"] = sum.PercentComplete()
	return sum, nil
}

func summarize(project *domain.Project, activities []*domain.Activity, hoursPerDay float64) *ScheduleSummary {
	sum := &ScheduleSummary{
		Project:       project,
		ActivityCount: len(activities),
		ByStatus: map[domain.ActivityStatus]int{
			domain.ActivityNotStarted: 0,
			domain.ActivityInProgress: 0,
			domain.ActivityCompleted:  0,
		},
		HoursPerDay: hoursPerDay,
		DataDate:    project.DataDate,
	}
	for _, a := range activities {
		sum.ByStatus[a.Status]++
		if xer.IsCriticalActivity(a.TotalFloatHrs) {
			sum.CriticalCount++
		}
		if a.IsComplete() {
			continue
		}
		if days := xer.HoursToWorkdays(a.RemainingDurationHrs, hoursPerDay); days != nil {
			sum.RemainingWorkdays += *days
		}
	}
	return sum
}
