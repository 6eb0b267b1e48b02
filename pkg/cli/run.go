package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/pipesched/pkg/cli/config"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func runCommand() *cli.Command {
	var (
		bitbucket config.Bitbucket
		catalog   config.Catalog
		sentry    config.Sentry
		reconcile config.Reconcile
		summary   bool
	)

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Reconcile scheduled pipelines once",
		Flags: slice.Flatten(
			[]cli.Flag{
				&cli.BoolFlag{
					Name:        "summary",
					Usage:       "Print a table of results to stdout after the run",
					Destination: &summary,
				},
			},
			reconcile.Flags(),
			bitbucket.Flags(),
			catalog.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			input, verbose, err := reconcile.Input()
			if err != nil {
				return err
			}
			if verbose {
				if err := logging.SetLevel("debug"); err != nil {
					return err
				}
			}

			logging.Default().Debug("starting run",
				slog.Any("Reconcile", reconcile),
				slog.Any("Bitbucket", bitbucket),
				slog.Any("Catalog", catalog),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush()

			uc, err := newUseCase(ctx, &bitbucket, &catalog)
			if err != nil {
				return err
			}

			results, err := uc.Reconcile(ctx, input)
			if err != nil {
				return err
			}

			if summary {
				renderSummary(os.Stdout, results)
			}
			return nil
		},
	}
}
