package model

import (
	"log/slog"

	"github.com/m-mizutani/pipesched/pkg/domain/types"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
	ActionSkip   Action = "skip"
)

type Status string

const (
	// StatusApplied means the remote schedule was created or deleted
	StatusApplied Status = "applied"
	// StatusDryRun means the repository was eligible but no change was made
	StatusDryRun Status = "dry_run"
	// StatusNoop means the remote state already matched and nothing was sent
	StatusNoop Status = "noop"
	// StatusConflict means a matching schedule already exists on create
	StatusConflict Status = "conflict"
	StatusFailed   Status = "failed"
	StatusSkipped  Status = "skipped"
)

// Outcome is the result of a single schedule operation. Operations report
// failures through Outcome instead of returning errors.
type Outcome struct {
	Action Action `json:"action"`
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// RepoResult is the outcome of reconciling one repository
type RepoResult struct {
	Repo          types.RepoSlug `json:"repo"`
	InDevelopment *bool          `json:"in_development,omitempty"`
	Outcome
}

func (x *RepoResult) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("repo", x.Repo.String()),
		slog.String("action", string(x.Action)),
		slog.String("status", string(x.Status)),
	}
	if x.InDevelopment != nil {
		attrs = append(attrs, slog.Bool("in_development", *x.InDevelopment))
	}
	if x.Reason != "" {
		attrs = append(attrs, slog.String("reason", x.Reason))
	}
	return slog.GroupValue(attrs...)
}

// Summarize counts results by status
func Summarize(results []*RepoResult) map[Status]int {
	counts := make(map[Status]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}
