package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/pipesched/pkg/domain/model"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
	"github.com/m-mizutani/pipesched/pkg/utils/errutil"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
)

// getDefaultBranch returns the first of types.DefaultBranchCandidates that exists in repo
func (x *UseCase) getDefaultBranch(ctx context.Context, repo types.RepoSlug) (types.BranchName, bool) {
	branches, err := x.clients.BuildHost().ListBranches(ctx, repo, types.DefaultBranchCandidates)
	if err != nil {
		errutil.HandleError(ctx, "Failed to get default branch name", err)
		return "", false
	}

	for _, candidate := range types.DefaultBranchCandidates {
		for _, b := range branches {
			if b == candidate {
				return b, true
			}
		}
	}

	logging.From(ctx).Warn("Failed to get default branch name: no main or master branch")
	return "", false
}

func (x *UseCase) listSchedules(ctx context.Context, repo types.RepoSlug) ([]*model.Schedule, bool) {
	logging.From(ctx).Debug("Retrieving scheduled pipelines...")

	schedules, err := x.clients.BuildHost().ListSchedules(ctx, repo)
	if err != nil {
		errutil.HandleError(ctx, "Failed to retrieve scheduled pipelines", err)
		return nil, false
	}
	return schedules, true
}

// resolve looks up both the default branch and existing schedules. ok is false if either failed.
func (x *UseCase) resolve(ctx context.Context, repo types.RepoSlug) (types.BranchName, []*model.Schedule, bool) {
	branch, branchOK := x.getDefaultBranch(ctx, repo)
	schedules, schedulesOK := x.listSchedules(ctx, repo)
	return branch, schedules, branchOK && schedulesOK
}

// CreateSchedule enables the managed schedule on the default branch of repo.
// It never sends a request when a matching schedule already exists.
func (x *UseCase) CreateSchedule(ctx context.Context, repo types.RepoSlug, dryRun bool) model.Outcome {
	logger := logging.From(ctx)
	logger.Debug("Creating scheduled pipeline...")

	branch, schedules, ok := x.resolve(ctx, repo)
	if !ok {
		logger.Error("Failed to create scheduled pipeline.")
		return model.Outcome{Action: model.ActionCreate, Status: model.StatusFailed, Reason: "failed to resolve default branch or schedules"}
	}

	if existing := model.FindSchedule(schedules, x.cronPattern, branch); existing != nil {
		logger.Warn("Failed to create scheduled pipeline: this schedule already exists.",
			slog.String("branch", branch.String()),
			slog.String("schedule_id", existing.ID.String()),
		)
		return model.Outcome{Action: model.ActionCreate, Status: model.StatusConflict, Reason: "schedule already exists"}
	}

	if dryRun {
		logger.Info("Eligible for Scheduling: " + repo.String())
		return model.Outcome{Action: model.ActionCreate, Status: model.StatusDryRun}
	}

	created, err := x.clients.BuildHost().CreateSchedule(ctx, repo, &model.CreateScheduleInput{
		CronPattern: x.cronPattern,
		Branch:      branch,
	})
	if err != nil {
		errutil.HandleError(ctx, "Failed to create scheduled pipeline", err)
		return model.Outcome{Action: model.ActionCreate, Status: model.StatusFailed, Reason: err.Error()}
	}

	logger.Info("Scheduled pipeline created",
		slog.String("branch", branch.String()),
		slog.String("schedule_id", created.ID.String()),
	)
	return model.Outcome{Action: model.ActionCreate, Status: model.StatusApplied}
}

// DeleteSchedule removes the first schedule of repo that matches the cron
// pattern and the default branch. Nothing is sent when none matches.
func (x *UseCase) DeleteSchedule(ctx context.Context, repo types.RepoSlug, dryRun bool) model.Outcome {
	logger := logging.From(ctx)
	logger.Debug("Deleting scheduled pipeline...")

	branch, schedules, ok := x.resolve(ctx, repo)
	if !ok {
		logger.Error("Failed to delete scheduled pipeline.")
		return model.Outcome{Action: model.ActionDelete, Status: model.StatusFailed, Reason: "failed to resolve default branch or schedules"}
	}

	if dryRun {
		logger.Info("Eligible for Schedule Deletion: " + repo.String())
		return model.Outcome{Action: model.ActionDelete, Status: model.StatusDryRun}
	}

	target := model.FindSchedule(schedules, x.cronPattern, branch)
	if target == nil {
		logger.Debug("No scheduled pipeline to delete", slog.String("branch", branch.String()))
		return model.Outcome{Action: model.ActionDelete, Status: model.StatusNoop, Reason: "no matching schedule"}
	}

	if err := x.clients.BuildHost().DeleteSchedule(ctx, repo, target.ID); err != nil {
		errutil.HandleError(ctx, "Failed to delete scheduled pipeline", err)
		return model.Outcome{Action: model.ActionDelete, Status: model.StatusFailed, Reason: err.Error()}
	}

	logger.Info("Scheduled pipeline deleted",
		slog.String("branch", branch.String()),
		slog.String("schedule_id", target.ID.String()),
	)
	return model.Outcome{Action: model.ActionDelete, Status: model.StatusApplied}
}
