package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipesched/pkg/domain/model"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
	"github.com/m-mizutani/pipesched/pkg/utils/errutil"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// Reconcile creates or deletes the managed schedule of each selected
// repository according to its recent pipeline activity. Results are returned
// in enumeration order. Failures of a single repository are reported in its
// result; the returned error is only for invalid input.
func (x *UseCase) Reconcile(ctx context.Context, input *model.ReconcileInput) ([]*model.RepoResult, error) {
	if input == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "reconcile input is nil")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients == nil || x.clients.BuildHost() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "build host is not configured")
	}
	if len(input.Repositories) == 0 && x.clients.ServiceCatalog() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "service catalog is required when no repository is given")
	}

	overrides, err := CompileOverrides(input.Overrides)
	if err != nil {
		return nil, err
	}

	requestID, ctx := logging.CtxRequestID(ctx)
	logger := logging.From(ctx).With(slog.String("request_id", requestID.String()))
	ctx = logging.With(ctx, logger)

	logger.Info("Processing services...",
		slog.Bool("dry_run", input.DryRun),
		slog.Bool("test", input.Test),
		slog.Int("overrides", len(overrides)),
	)

	var results []*model.RepoResult
	if input.Concurrency > 1 {
		results = x.reconcileParallel(ctx, input, overrides)
	} else {
		for repo := range x.EnumerateRepositories(ctx, input.Repositories) {
			results = append(results, x.reconcileRepo(ctx, repo, input, overrides))
		}
	}

	attrs := []any{slog.Int("total", len(results))}
	for status, n := range model.Summarize(results) {
		attrs = append(attrs, slog.Int(string(status), n))
	}
	logger.Info("Services processed.", attrs...)

	return results, nil
}

// reconcileParallel runs reconcileRepo for up to input.Concurrency
// repositories at once. Logs of a repository are buffered and written
// together when it finishes.
func (x *UseCase) reconcileParallel(ctx context.Context, input *model.ReconcileInput, overrides Overrides) []*model.RepoResult {
	var (
		eg      errgroup.Group
		mu      sync.Mutex
		flushMu sync.Mutex
		results []*model.RepoResult
	)
	eg.SetLimit(input.Concurrency)
	base := logging.From(ctx)

	for repo := range x.EnumerateRepositories(ctx, input.Repositories) {
		mu.Lock()
		idx := len(results)
		results = append(results, nil)
		mu.Unlock()

		eg.Go(func() error {
			logger, flush := logging.Buffered(base)
			result := x.reconcileRepo(logging.With(ctx, logger), repo, input, overrides)

			mu.Lock()
			results[idx] = result
			mu.Unlock()

			flushMu.Lock()
			flush(ctx)
			flushMu.Unlock()
			return nil
		})
	}

	_ = eg.Wait()
	return results
}

func (x *UseCase) reconcileRepo(ctx context.Context, repo types.RepoSlug, input *model.ReconcileInput, overrides Overrides) *model.RepoResult {
	logger := logging.From(ctx).With(slog.String("repo", repo.String()))
	ctx = logging.With(ctx, logger)
	logger.Info("Processing service: " + repo.String() + "...")

	result := &model.RepoResult{Repo: repo}
	skip := func(reason string) *model.RepoResult {
		result.Outcome = model.Outcome{Action: model.ActionSkip, Status: model.StatusSkipped, Reason: reason}
		return result
	}

	if overrides.Match(repo) {
		logger.Info("Bitbucket repo for service " + repo.String() + " overridden. Skipping...")
		return skip("overridden")
	}

	pipelines, ok := x.fetchRecentPipelines(ctx, repo)
	if !ok {
		logger.Info("Unable to retrieve pipelines for service: " + repo.String() + ". Skipping...")
		return skip("pipeline history unavailable")
	}
	if len(pipelines) == 0 {
		logger.Info("No pipelines found in repo for service: " + repo.String() + ". Skipping...")
		return skip("no pipelines")
	}

	logger.Debug("Checking development status...")
	inDev := IsInDevelopment(pipelines, logging.CtxTime(ctx), input.RecentWindow())
	result.InDevelopment = &inDev

	if inDev {
		logger.Debug("This repo is in development.")
		result.Outcome = x.DeleteSchedule(ctx, repo, input.DryRun)
	} else {
		logger.Debug("This repo is not in development.")
		result.Outcome = x.CreateSchedule(ctx, repo, input.DryRun)
	}

	logger.Debug("Service reconciled", slog.Any("result", result))
	return result
}

// fetchRecentPipelines returns the latest pipelines of repo, newest first.
// ok is false when the history could not be read.
func (x *UseCase) fetchRecentPipelines(ctx context.Context, repo types.RepoSlug) ([]*model.Pipeline, bool) {
	logging.From(ctx).Debug("Retrieving latest pipelines...")

	pipelines, err := x.clients.BuildHost().ListPipelines(ctx, repo)
	if err != nil {
		errutil.HandleError(ctx, "Failed to get latest pipelines", err)
		return nil, false
	}
	return pipelines, true
}
