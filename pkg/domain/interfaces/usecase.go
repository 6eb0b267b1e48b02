package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/pipesched/pkg/domain/model"
)

type UseCase interface {
	Reconcile(ctx context.Context, input *model.ReconcileInput) ([]*model.RepoResult, error)
}
