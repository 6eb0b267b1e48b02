package cli

import (
	"context"

	"github.com/m-mizutani/pipesched/pkg/cli/config"
	"github.com/m-mizutani/pipesched/pkg/infra"
	"github.com/m-mizutani/pipesched/pkg/usecase"
)

// newUseCase builds the reconciler from the Bitbucket and catalog configuration
func newUseCase(ctx context.Context, bb *config.Bitbucket, catalog *config.Catalog) (*usecase.UseCase, error) {
	cron, err := bb.CronPattern()
	if err != nil {
		return nil, err
	}

	bbClient, err := bb.New()
	if err != nil {
		return nil, err
	}
	options := []infra.Option{
		infra.WithBuildHost(bbClient),
	}

	if ddClient, err := catalog.New(); err != nil {
		return nil, err
	} else if ddClient != nil {
		options = append(options, infra.WithServiceCatalog(ddClient))
	}

	return usecase.New(infra.New(options...), usecase.WithCronPattern(cron)), nil
}
