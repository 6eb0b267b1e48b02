package config

import (
	"log/slog"

	"github.com/m-mizutani/pipesched/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Reconcile is a set of per-invocation options of the run command
type Reconcile struct {
	repositories []string
	overrides    []string
	dryRun       bool
	verbose      bool
	test         bool
	concurrency  int
	runFile      string
}

func (x *Reconcile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "repository",
			Aliases:     []string{"r"},
			Usage:       "Repository slug to process. Services in the catalog are processed if not given",
			Category:    "Reconcile",
			Destination: &x.repositories,
		},
		&cli.StringSliceFlag{
			Name:        "override",
			Usage:       "Regular expression of repositories to exclude",
			Category:    "Reconcile",
			Destination: &x.overrides,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Aliases:     []string{"d"},
			Usage:       "Report eligible repositories without changing schedules",
			Category:    "Reconcile",
			Destination: &x.dryRun,
			Sources:     cli.EnvVars("PIPESCHED_DRY_RUN"),
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "Enable debug logging",
			Category:    "Reconcile",
			Destination: &x.verbose,
		},
		&cli.BoolFlag{
			Name:        "test",
			Aliases:     []string{"t"},
			Usage:       "Use a 2 minute activity window instead of a week",
			Category:    "Reconcile",
			Destination: &x.test,
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Number of repositories processed in parallel",
			Category:    "Reconcile",
			Destination: &x.concurrency,
			Sources:     cli.EnvVars("PIPESCHED_CONCURRENCY"),
			Value:       1,
		},
		&cli.StringFlag{
			Name:        "run-file",
			Usage:       "YAML file of repositories, override, dry_run, verbose and test",
			Category:    "Reconcile",
			Destination: &x.runFile,
			Sources:     cli.EnvVars("PIPESCHED_RUN_FILE"),
		},
	}
}

// Event merges the run file, if any, with the flags. Lists given by flags
// replace those of the file and boolean options are enabled by either.
func (x *Reconcile) Event() (*model.Event, error) {
	event := &model.Event{}
	if x.runFile != "" {
		loaded, err := LoadRunFile(x.runFile)
		if err != nil {
			return nil, err
		}
		event = loaded
	}

	if len(x.repositories) > 0 {
		event.Repositories = x.repositories
	}
	if len(x.overrides) > 0 {
		event.Override = x.overrides
	}
	event.DryRun = event.DryRun || x.dryRun
	event.Verbose = event.Verbose || x.verbose
	event.Test = event.Test || x.test

	return event, nil
}

// Input builds a reconcile input from the merged event
func (x *Reconcile) Input() (*model.ReconcileInput, bool, error) {
	event, err := x.Event()
	if err != nil {
		return nil, false, err
	}

	input := event.ToInput()
	input.Concurrency = x.concurrency
	return input, event.Verbose, nil
}

func (x Reconcile) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Repositories", x.repositories),
		slog.Any("Overrides", x.overrides),
		slog.Bool("DryRun", x.dryRun),
		slog.Bool("Verbose", x.verbose),
		slog.Bool("Test", x.test),
		slog.Int("Concurrency", x.concurrency),
		slog.String("RunFile", x.runFile),
	)
}
