package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pipesched/pkg/domain/mock"
	"github.com/m-mizutani/pipesched/pkg/domain/model"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
	"github.com/m-mizutani/pipesched/pkg/infra"
	"github.com/m-mizutani/pipesched/pkg/usecase"
)

func managedSchedule(id types.ScheduleID, branch types.BranchName) *model.Schedule {
	return &model.Schedule{
		ID:          id,
		CronPattern: types.DefaultCronPattern,
		Branch:      branch,
		Enabled:     true,
	}
}

func TestGetDefaultBranch(t *testing.T) {
	testCases := map[string]struct {
		branches []types.BranchName
		err      error
		expect   types.BranchName
		ok       bool
	}{
		"main only":         {branches: []types.BranchName{"main"}, expect: "main", ok: true},
		"master only":       {branches: []types.BranchName{"master"}, expect: "master", ok: true},
		"both prefers main": {branches: []types.BranchName{"master", "main"}, expect: "main", ok: true},
		"neither":           {branches: nil, ok: false},
		"request failure":   {err: errors.New("boom"), ok: false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			host := &mock.BuildHostMock{
				ListBranchesFunc: func(ctx context.Context, repo types.RepoSlug, names []types.BranchName) ([]types.BranchName, error) {
					gt.V(t, names).Equal(types.DefaultBranchCandidates)
					return tc.branches, tc.err
				},
			}
			uc := usecase.New(infra.New(infra.WithBuildHost(host)))
			ctx, _ := newTestContext(t)

			branch, ok := usecase.GetDefaultBranchForTest(uc, ctx, "svc")
			gt.V(t, ok).Equal(tc.ok)
			gt.V(t, branch).Equal(tc.expect)
		})
	}
}

func TestListSchedules(t *testing.T) {
	t.Run("failure is absent", func(t *testing.T) {
		host := &mock.BuildHostMock{
			ListSchedulesFunc: func(ctx context.Context, repo types.RepoSlug) ([]*model.Schedule, error) {
				return nil, errors.New("boom")
			},
		}
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, logs := newTestContext(t)

		schedules, ok := usecase.ListSchedulesForTest(uc, ctx, "svc")
		gt.False(t, ok)
		gt.V(t, len(schedules)).Equal(0)
		gt.S(t, logs.String()).Contains("Failed to retrieve scheduled pipelines")
	})

	t.Run("empty list is present", func(t *testing.T) {
		host := &mock.BuildHostMock{
			ListSchedulesFunc: func(ctx context.Context, repo types.RepoSlug) ([]*model.Schedule, error) {
				return []*model.Schedule{}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, _ := newTestContext(t)

		_, ok := usecase.ListSchedulesForTest(uc, ctx, "svc")
		gt.True(t, ok)
	})
}

func TestCreateSchedule(t *testing.T) {
	t.Run("creates schedule on default branch", func(t *testing.T) {
		state := newHostState()
		state.branches["svc-b"] = []types.BranchName{"master"}
		host := state.mock()
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, _ := newTestContext(t)

		outcome := uc.CreateSchedule(ctx, "svc-b", false)
		gt.V(t, outcome.Action).Equal(model.ActionCreate)
		gt.V(t, outcome.Status).Equal(model.StatusApplied)

		calls := host.CreateScheduleCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Repo).Equal(types.RepoSlug("svc-b"))
		gt.V(t, calls[0].Input.Branch).Equal(types.BranchName("master"))
	})

	t.Run("second create is a conflict without mutation", func(t *testing.T) {
		state := newHostState()
		state.branches["svc"] = []types.BranchName{"main"}
		host := state.mock()
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, logs := newTestContext(t)

		gt.V(t, uc.CreateSchedule(ctx, "svc", false).Status).Equal(model.StatusApplied)
		gt.V(t, uc.CreateSchedule(ctx, "svc", false).Status).Equal(model.StatusConflict)

		gt.V(t, len(host.CreateScheduleCalls())).Equal(1)
		gt.V(t, len(host.DeleteScheduleCalls())).Equal(0)
		gt.S(t, logs.String()).Contains("this schedule already exists")
	})

	t.Run("schedule on another branch or cron is not a duplicate", func(t *testing.T) {
		state := newHostState()
		state.branches["svc"] = []types.BranchName{"main"}
		state.schedules["svc"] = []*model.Schedule{
			managedSchedule("{other-branch}", "develop"),
			{ID: "{other-cron}", CronPattern: "0 0 1 ? * 1 *", Branch: "main", Enabled: true},
		}
		host := state.mock()
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, _ := newTestContext(t)

		gt.V(t, uc.CreateSchedule(ctx, "svc", false).Status).Equal(model.StatusApplied)
		gt.V(t, len(host.CreateScheduleCalls())).Equal(1)
	})

	t.Run("dry run reports eligibility without mutation", func(t *testing.T) {
		state := newHostState()
		state.branches["svc-d"] = []types.BranchName{"main"}
		host := state.mock()
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, logs := newTestContext(t)

		gt.V(t, uc.CreateSchedule(ctx, "svc-d", true).Status).Equal(model.StatusDryRun)
		gt.V(t, len(host.CreateScheduleCalls())).Equal(0)
		gt.S(t, logs.String()).Contains("Eligible for Scheduling: svc-d")
	})

	t.Run("dry run still reports duplicate", func(t *testing.T) {
		state := newHostState()
		state.branches["svc"] = []types.BranchName{"main"}
		state.schedules["svc"] = []*model.Schedule{managedSchedule("{s1}", "main")}
		host := state.mock()
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, logs := newTestContext(t)

		gt.V(t, uc.CreateSchedule(ctx, "svc", true).Status).Equal(model.StatusConflict)
		gt.False(t, strings.Contains(logs.String(), "Eligible for Scheduling"))
	})

	t.Run("no default branch fails without mutation", func(t *testing.T) {
		state := newHostState()
		host := state.mock()
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, _ := newTestContext(t)

		gt.V(t, uc.CreateSchedule(ctx, "svc", false).Status).Equal(model.StatusFailed)
		gt.V(t, len(host.CreateScheduleCalls())).Equal(0)
	})

	t.Run("incomplete schedule listing fails without mutation", func(t *testing.T) {
		state := newHostState()
		state.branches["svc"] = []types.BranchName{"main"}
		host := state.mock()
		host.ListSchedulesFunc = func(ctx context.Context, repo types.RepoSlug) ([]*model.Schedule, error) {
			return nil, goerr.Wrap(types.ErrUnexpectedStatus, "too many schedule pages")
		}
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, logs := newTestContext(t)

		gt.V(t, uc.CreateSchedule(ctx, "svc", false).Status).Equal(model.StatusFailed)
		gt.V(t, len(host.CreateScheduleCalls())).Equal(0)
		gt.S(t, logs.String()).Contains("Failed to create scheduled pipeline.")
	})

	t.Run("remote failure is reported as failed", func(t *testing.T) {
		state := newHostState()
		state.branches["svc"] = []types.BranchName{"main"}
		host := state.mock()
		host.CreateScheduleFunc = func(ctx context.Context, repo types.RepoSlug, input *model.CreateScheduleInput) (*model.Schedule, error) {
			return nil, errors.New("Access denied")
		}
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, logs := newTestContext(t)

		outcome := uc.CreateSchedule(ctx, "svc", false)
		gt.V(t, outcome.Status).Equal(model.StatusFailed)
		gt.S(t, outcome.Reason).Contains("Access denied")
		gt.S(t, logs.String()).Contains("Failed to create scheduled pipeline")
	})
}

func TestDeleteSchedule(t *testing.T) {
	t.Run("deletes first matching schedule", func(t *testing.T) {
		state := newHostState()
		state.branches["svc-a"] = []types.BranchName{"main"}
		state.schedules["svc-a"] = []*model.Schedule{
			managedSchedule("{other}", "develop"),
			managedSchedule("{s1}", "main"),
			managedSchedule("{s2}", "main"),
		}
		host := state.mock()
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, _ := newTestContext(t)

		outcome := uc.DeleteSchedule(ctx, "svc-a", false)
		gt.V(t, outcome.Action).Equal(model.ActionDelete)
		gt.V(t, outcome.Status).Equal(model.StatusApplied)

		calls := host.DeleteScheduleCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Id).Equal(types.ScheduleID("{s1}"))
	})

	t.Run("no matching schedule is a noop", func(t *testing.T) {
		state := newHostState()
		state.branches["svc"] = []types.BranchName{"main"}
		host := state.mock()
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, _ := newTestContext(t)

		outcome := uc.DeleteSchedule(ctx, "svc", false)
		gt.V(t, outcome.Status).Equal(model.StatusNoop)
		gt.V(t, len(host.DeleteScheduleCalls())).Equal(0)
		gt.V(t, len(host.CreateScheduleCalls())).Equal(0)
	})

	t.Run("dry run reports eligibility without mutation", func(t *testing.T) {
		state := newHostState()
		state.branches["svc"] = []types.BranchName{"main"}
		state.schedules["svc"] = []*model.Schedule{managedSchedule("{s1}", "main")}
		host := state.mock()
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, logs := newTestContext(t)

		gt.V(t, uc.DeleteSchedule(ctx, "svc", true).Status).Equal(model.StatusDryRun)
		gt.V(t, len(host.DeleteScheduleCalls())).Equal(0)
		gt.S(t, logs.String()).Contains("Eligible for Schedule Deletion: svc")
	})

	t.Run("schedule lookup failure fails", func(t *testing.T) {
		state := newHostState()
		state.branches["svc"] = []types.BranchName{"main"}
		host := state.mock()
		host.ListSchedulesFunc = func(ctx context.Context, repo types.RepoSlug) ([]*model.Schedule, error) {
			return nil, errors.New("boom")
		}
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, logs := newTestContext(t)

		gt.V(t, uc.DeleteSchedule(ctx, "svc", false).Status).Equal(model.StatusFailed)
		gt.V(t, len(host.DeleteScheduleCalls())).Equal(0)
		gt.S(t, logs.String()).Contains("Failed to delete scheduled pipeline.")
	})

	t.Run("remote failure is reported as failed", func(t *testing.T) {
		state := newHostState()
		state.branches["svc"] = []types.BranchName{"main"}
		state.schedules["svc"] = []*model.Schedule{managedSchedule("{s1}", "main")}
		host := state.mock()
		host.DeleteScheduleFunc = func(ctx context.Context, repo types.RepoSlug, id types.ScheduleID) error {
			return errors.New("server error")
		}
		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, _ := newTestContext(t)

		gt.V(t, uc.DeleteSchedule(ctx, "svc", false).Status).Equal(model.StatusFailed)
	})
}
