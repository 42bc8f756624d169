package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/xerplan/internal/db"
	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/alexanderramin/xerplan/internal/importer"
	"github.com/alexanderramin/xerplan/internal/repository"
	"github.com/alexanderramin/xerplan/internal/xer"
	"github.com/google/uuid"
)

type importService struct {
	projects   repository.ProjectRepo
	activities repository.ActivityRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewImportService(
	projects repository.ProjectRepo,
	activities repository.ActivityRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ImportService {
	return &importService{
		projects:   projects,
		activities: activities,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func parseOptions(opts ImportOptions) []xer.Option {
	if opts.Strict {
		return []xer.Option{xer.WithStrict()}
	}
	return nil
}

func (s *importService) ImportFile(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	res, err := xer.ParseFile(path, parseOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("loading XER file: %w", err)
	}
	if opts.FileName == "" {
		opts.FileName = path
	}
	return s.ImportParsed(ctx, &res, opts)
}

func (s *importService) ImportContent(ctx context.Context, content string, opts ImportOptions) (*ImportResult, error) {
	res := xer.Parse(content, parseOptions(opts)...)
	return s.ImportParsed(ctx, &res, opts)
}

// ResolveTarget reports which stored project an import of res would replace.
// It returns a nil Project when the import would create a new one.
func (s *importService) ResolveTarget(ctx context.Context, res *xer.ParseResult, projectID string) (*ImportTarget, error) {
	scope := importer.SelectScope(res)
	project, err := findTarget(ctx, s.projects, scope.Project, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return &ImportTarget{}, nil
	}
	counts, err := s.activities.CountByStatus(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	target := &ImportTarget{Project: project}
	for _, n := range counts {
		target.Activities += n
	}
	return target, nil
}

// findTarget returns the project to replace, or nil for a new project. An
// explicit projectID must exist.
func findTarget(ctx context.Context, projects repository.ProjectRepo, src *xer.Project, projectID string) (*domain.Project, error) {
	if projectID != "" {
		p, err := projects.GetByID(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("target project %s: %w", projectID, err)
		}
		return p, nil
	}
	if src == nil || src.ProjectID == "" {
		return nil, nil
	}
	p, err := projects.GetBySourceID(ctx, src.ProjectID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// ImportParsed replaces the target project's schedule with the content of
// res in a single transaction.
func (s *importService) ImportParsed(ctx context.Context, res *xer.ParseResult, opts ImportOptions) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"file":   opts.FileName,
		"strict": opts.Strict,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      UseCaseImportXER,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var warnings []string
	warnings, err = importer.Evaluate(res)
	if err != nil {
		return nil, err
	}
	scope := importer.SelectScope(res)
	if err = importer.CheckScope(scope); err != nil {
		return nil, err
	}
	warnings = append(warnings, scope.Warnings...)

	result = &ImportResult{Warnings: warnings}
	if res.Header != nil {
		result.XERVersion = res.Header.Version
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txWBS := repository.NewSQLiteWBSRepo(tx)
		txActivities := repository.NewSQLiteActivityRepo(tx)
		txRelationships := repository.NewSQLiteRelationshipRepo(tx)
		txRuns := repository.NewSQLiteImportRunRepo(tx)

		project, err := findTarget(ctx, txProjects, scope.Project, opts.ProjectID)
		if err != nil {
			return err
		}
		if project == nil {
			project = importer.NewProject(scope.Project, now)
			if err := txProjects.Create(ctx, project); err != nil {
				return fmt.Errorf("creating project: %w", err)
			}
			result.Created = true
		} else {
			importer.ApplyProject(project, scope.Project, now)
			if err := txProjects.Update(ctx, project); err != nil {
				return fmt.Errorf("updating project: %w", err)
			}
		}
		result.Project = project

		if _, err := txRelationships.DeleteByProject(ctx, project.ID); err != nil {
			return err
		}
		if _, err := txActivities.DeleteByProject(ctx, project.ID); err != nil {
			return err
		}
		if _, err := txWBS.DeleteByProject(ctx, project.ID); err != nil {
			return err
		}

		plan := importer.ConvertWBS(project.ID, importer.OrderWBS(scope.WBS), now)
		for _, node := range plan.Nodes {
			if err := txWBS.Create(ctx, node); err != nil {
				return fmt.Errorf("creating WBS node %q: %w", node.Name, err)
			}
		}
		result.WBSCount = len(plan.Nodes)
		result.OrphanedWBS = plan.Orphaned

		activities := importer.ConvertActivities(project.ID, scope.Tasks, plan.IDs, now)
		if err := txActivities.CreateBatch(ctx, activities); err != nil {
			return fmt.Errorf("creating activities: %w", err)
		}
		result.ActivityCount = len(activities)

		taskIDs, err := txActivities.SourceIDMap(ctx, project.ID)
		if err != nil {
			return err
		}
		rels, skipped := importer.ConvertRelationships(project.ID, scope.TaskPreds, taskIDs)
		if err := txRelationships.CreateBatch(ctx, rels); err != nil {
			return fmt.Errorf("creating relationships: %w", err)
		}
		result.RelationshipCount = len(rels)
		result.SkippedRelationships = skipped

		return txRuns.Create(ctx, &domain.ImportRun{
			ID:                   uuid.New().String(),
			ProjectID:            project.ID,
			FileName:             opts.FileName,
			XERVersion:           result.XERVersion,
			WBSCount:             result.WBSCount,
			ActivityCount:        result.ActivityCount,
			RelationshipCount:    result.RelationshipCount,
			SkippedRelationships: result.SkippedRelationships,
			Warnings:             result.Warnings,
			ImportedAt:           now,
		})
	})
	if err != nil {
		return nil, err
	}

	fields["project_id"] = result.Project.ID
	fields["activities"] = result.ActivityCount
	fields["relationships"] = result.RelationshipCount
	fields["skipped_relationships"] = result.SkippedRelationships
	fields["warnings"] = len(result.Warnings)
	return result, nil
}
