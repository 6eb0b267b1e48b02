package usecase

import (
	"github.com/m-mizutani/pipesched/pkg/domain/types"
	"github.com/m-mizutani/pipesched/pkg/infra"
)

type UseCase struct {
	clients     *infra.Clients
	cronPattern types.CronPattern
}

type Option func(*UseCase)

// WithCronPattern sets the cron pattern of the managed schedule
func WithCronPattern(pattern types.CronPattern) Option {
	return func(x *UseCase) {
		x.cronPattern = pattern
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:     clients,
		cronPattern: types.DefaultCronPattern,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
