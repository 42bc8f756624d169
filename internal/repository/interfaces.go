package repository

import (
	"context"

	"github.com/alexanderramin/xerplan/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetBySourceID(ctx context.Context, sourceProjectID string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type WBSRepo interface {
	Create(ctx context.Context, n *domain.WBSNode) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.WBSNode, error)
	DeleteByProject(ctx context.Context, projectID string) (int, error)
}

type ActivityRepo interface {
	CreateBatch(ctx context.Context, activities []*domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Activity, error)
	ListCritical(ctx context.Context, projectID string) ([]*domain.Activity, error)
	SourceIDMap(ctx context.Context, projectID string) (map[string]string, error)
	CountByStatus(ctx context.Context, projectID string) (map[domain.ActivityStatus]int, error)
	DeleteByProject(ctx context.Context, projectID string) (int, error)
}

type RelationshipRepo interface {
	CreateBatch(ctx context.Context, rels []*domain.Relationship) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Relationship, error)
	ListPredecessors(ctx context.Context, activityID string) ([]*domain.Relationship, error)
	CountByProject(ctx context.Context, projectID string) (int, error)
	DeleteByProject(ctx context.Context, projectID string) (int, error)
}

type ImportRunRepo interface {
	Create(ctx context.Context, run *domain.ImportRun) error
	ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.ImportRun, error)
}
