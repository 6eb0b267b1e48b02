package usecase_test

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pipesched/pkg/domain/mock"
	"github.com/m-mizutani/pipesched/pkg/domain/model"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
	"github.com/m-mizutani/pipesched/pkg/infra"
	"github.com/m-mizutani/pipesched/pkg/usecase"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
)

var testNow = time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (x *syncBuffer) Write(p []byte) (int, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.buf.Write(p)
}

func (x *syncBuffer) String() string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.buf.String()
}

// newTestContext returns a context with a fixed clock and a debug logger writing into the returned buffer
func newTestContext(t *testing.T) (context.Context, *syncBuffer) {
	t.Helper()
	buf := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := logging.With(context.Background(), logger)
	ctx = logging.CtxWithTime(ctx, func() time.Time { return testNow })
	return ctx, buf
}

func pipeline(ago time.Duration, trigger types.TriggerName) *model.Pipeline {
	return &model.Pipeline{
		UUID:      "{" + string(trigger) + "-" + ago.String() + "}",
		CreatedOn: testNow.Add(-ago),
		Trigger:   trigger,
	}
}

// hostState is an in-memory build host that behaves like the remote API for a set of repositories
type hostState struct {
	mu        sync.Mutex
	branches  map[types.RepoSlug][]types.BranchName
	pipelines map[types.RepoSlug][]*model.Pipeline
	schedules map[types.RepoSlug][]*model.Schedule
	nextID    int
}

func newHostState() *hostState {
	return &hostState{
		branches:  map[types.RepoSlug][]types.BranchName{},
		pipelines: map[types.RepoSlug][]*model.Pipeline{},
		schedules: map[types.RepoSlug][]*model.Schedule{},
	}
}

func (x *hostState) mock() *mock.BuildHostMock {
	return &mock.BuildHostMock{
		ListBranchesFunc: func(ctx context.Context, repo types.RepoSlug, names []types.BranchName) ([]types.BranchName, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			return x.branches[repo], nil
		},
		ListPipelinesFunc: func(ctx context.Context, repo types.RepoSlug) ([]*model.Pipeline, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			return x.pipelines[repo], nil
		},
		ListSchedulesFunc: func(ctx context.Context, repo types.RepoSlug) ([]*model.Schedule, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			return append([]*model.Schedule{}, x.schedules[repo]...), nil
		},
		CreateScheduleFunc: func(ctx context.Context, repo types.RepoSlug, input *model.CreateScheduleInput) (*model.Schedule, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			x.nextID++
			s := &model.Schedule{
				ID:          types.ScheduleID("{created-" + strconv.Itoa(x.nextID) + "}"),
				CronPattern: input.CronPattern,
				Branch:      input.Branch,
				Enabled:     true,
			}
			x.schedules[repo] = append(x.schedules[repo], s)
			return s, nil
		},
		DeleteScheduleFunc: func(ctx context.Context, repo types.RepoSlug, id types.ScheduleID) error {
			x.mu.Lock()
			defer x.mu.Unlock()
			var kept []*model.Schedule
			for _, s := range x.schedules[repo] {
				if s.ID != id {
					kept = append(kept, s)
				}
			}
			x.schedules[repo] = kept
			return nil
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("default cron pattern", func(t *testing.T) {
		state := newHostState()
		state.branches["svc"] = []types.BranchName{"main"}
		host := state.mock()

		uc := usecase.New(infra.New(infra.WithBuildHost(host)))
		ctx, _ := newTestContext(t)
		gt.V(t, uc.CreateSchedule(ctx, "svc", false).Status).Equal(model.StatusApplied)
		gt.V(t, host.CreateScheduleCalls()[0].Input.CronPattern).Equal(types.DefaultCronPattern)
	})

	t.Run("custom cron pattern", func(t *testing.T) {
		state := newHostState()
		state.branches["svc"] = []types.BranchName{"main"}
		host := state.mock()

		uc := usecase.New(infra.New(infra.WithBuildHost(host)),
			usecase.WithCronPattern("0 30 2 ? * 1 *"),
		)
		ctx, _ := newTestContext(t)
		gt.V(t, uc.CreateSchedule(ctx, "svc", false).Status).Equal(model.StatusApplied)
		gt.V(t, host.CreateScheduleCalls()[0].Input.CronPattern).Equal(types.CronPattern("0 30 2 ? * 1 *"))
	})
}
