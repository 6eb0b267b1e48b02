package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BuildHost ServiceCatalog

import (
	"context"

	"github.com/m-mizutani/pipesched/pkg/domain/model"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
)

// BuildHost is the source control host that runs pipelines and holds their schedules
type BuildHost interface {
	// ListBranches returns the branches of repo whose name is one of names
	ListBranches(ctx context.Context, repo types.RepoSlug, names []types.BranchName) ([]types.BranchName, error)
	// ListPipelines returns the latest pipelines of repo, most recent first
	ListPipelines(ctx context.Context, repo types.RepoSlug) ([]*model.Pipeline, error)

	ListSchedules(ctx context.Context, repo types.RepoSlug) ([]*model.Schedule, error)
	CreateSchedule(ctx context.Context, repo types.RepoSlug, input *model.CreateScheduleInput) (*model.Schedule, error)
	DeleteSchedule(ctx context.Context, repo types.RepoSlug, id types.ScheduleID) error
}

// ServiceCatalog lists service definitions page by page. An empty page marks the end.
type ServiceCatalog interface {
	ListServiceDefinitions(ctx context.Context, page int) ([]*model.ServiceDefinition, error)
}
