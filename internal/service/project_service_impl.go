package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/alexanderramin/xerplan/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	runs     repository.ImportRunRepo
}

func NewProjectService(projects repository.ProjectRepo, runs repository.ImportRunRepo) ProjectService {
	return &projectService{projects: projects, runs: runs}
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

// Get resolves ref as a project id first, then as the proj_id of the
// source XER file.
func (s *projectService) Get(ctx context.Context, ref string) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, ref)
	if err == nil || !errors.Is(err, repository.ErrNotFound) {
		return p, err
	}
	return s.projects.GetBySourceID(ctx, ref)
}

// Delete removes the project and, through cascades, its whole schedule.
func (s *projectService) Delete(ctx context.Context, ref string) error {
	p, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	return s.projects.Delete(ctx, p.ID)
}

func (s *projectService) RecentImports(ctx context.Context, projectID string, limit int) ([]*domain.ImportRun, error) {
	return s.runs.ListByProject(ctx, projectID, limit)
}
