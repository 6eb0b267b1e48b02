package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
)

// ReconcileInput is the set of per-invocation parameters of a reconciliation run
type ReconcileInput struct {
	// Repositories to process. When empty, repositories are enumerated from the service catalog.
	Repositories []types.RepoSlug
	// Overrides are regular expressions. A repository matching any of them is not processed.
	Overrides []string
	DryRun    bool
	// Test shrinks the recent activity window so that the job can be tested end to end quickly
	Test        bool
	Concurrency int
}

func (x *ReconcileInput) Validate() error {
	if x.Concurrency < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "concurrency must not be negative",
			goerr.V("concurrency", x.Concurrency),
		)
	}
	return nil
}

// RecentWindow returns the duration in which a pipeline counts as recent activity
func (x *ReconcileInput) RecentWindow() time.Duration {
	if x.Test {
		return types.TestRecentWindow
	}
	return types.RecentWindow
}

// Event is the invocation payload accepted by the serve mode and the run file
type Event struct {
	Repositories []string `json:"repositories" yaml:"repositories"`
	Override     []string `json:"override" yaml:"override"`
	DryRun       bool     `json:"dry_run" yaml:"dry_run"`
	Verbose      bool     `json:"verbose" yaml:"verbose"`
	Test         bool     `json:"test" yaml:"test"`
}

func (x *Event) ToInput() *ReconcileInput {
	input := &ReconcileInput{
		Overrides: x.Override,
		DryRun:    x.DryRun,
		Test:      x.Test,
	}
	for _, repo := range x.Repositories {
		input.Repositories = append(input.Repositories, types.RepoSlug(repo))
	}
	return input
}
