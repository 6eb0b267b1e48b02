package bitbucket

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipesched/pkg/domain/model"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
)

type schedule struct {
	Type        string         `json:"type,omitempty"`
	UUID        string         `json:"uuid,omitempty"`
	Enabled     bool           `json:"enabled"`
	CronPattern string         `json:"cron_pattern"`
	Target      scheduleTarget `json:"target"`
}

type scheduleTarget struct {
	Type     string   `json:"type"`
	Selector selector `json:"selector"`
	RefName  string   `json:"ref_name,omitempty"`
	RefType  string   `json:"ref_type,omitempty"`
}

type selector struct {
	Type    string `json:"type"`
	Pattern string `json:"pattern"`
}

func (x *schedule) toModel() *model.Schedule {
	return &model.Schedule{
		ID:          types.ScheduleID(x.UUID),
		CronPattern: types.CronPattern(x.CronPattern),
		Branch:      types.BranchName(x.Target.Selector.Pattern),
		Enabled:     x.Enabled,
	}
}

// ListSchedules implements interfaces.BuildHost.
// https://developer.atlassian.com/cloud/bitbucket/rest/api-group-pipelines/#api-repositories-workspace-repo-slug-pipelines-config-schedules-get
func (x *Client) ListSchedules(ctx context.Context, repo types.RepoSlug) ([]*model.Schedule, error) {
	var schedules []*model.Schedule

	reqURL := x.repoURL(repo, "/pipelines_config/schedules")
	for i := 0; reqURL != "" && i < maxSchedulePages; i++ {
		resp, err := x.request(ctx, "GET", reqURL, nil)
		if err != nil {
			return nil, err
		}

		var result page[schedule]
		if err := resp.decode(&result); err != nil {
			return nil, goerr.Wrap(err, "failed to list schedules", goerr.V("repo", repo))
		}

		for _, s := range result.Values {
			schedules = append(schedules, s.toModel())
		}
		if result.Next != "" && !strings.HasPrefix(result.Next, x.baseURL+"/") {
			return nil, goerr.Wrap(types.ErrUnexpectedStatus, "next page is outside of API endpoint",
				goerr.V("repo", repo),
				goerr.V("next", result.Next),
			)
		}
		reqURL = result.Next
	}

	// A truncated list is never returned
	if reqURL != "" {
		return nil, goerr.Wrap(types.ErrUnexpectedStatus, "too many schedule pages",
			goerr.V("repo", repo),
			goerr.V("max_pages", maxSchedulePages),
		)
	}

	return schedules, nil
}

// CreateSchedule implements interfaces.BuildHost. The schedule is created enabled.
// https://developer.atlassian.com/cloud/bitbucket/rest/api-group-pipelines/#api-repositories-workspace-repo-slug-pipelines-config-schedules-post
func (x *Client) CreateSchedule(ctx context.Context, repo types.RepoSlug, input *model.CreateScheduleInput) (*model.Schedule, error) {
	body := &schedule{
		Type:        "pipeline_schedule",
		Enabled:     true,
		CronPattern: input.CronPattern.String(),
		Target: scheduleTarget{
			Type: "pipeline_ref_target",
			Selector: selector{
				Type:    "branches",
				Pattern: input.Branch.String(),
			},
			RefName: input.Branch.String(),
			RefType: "branch",
		},
	}

	resp, err := x.request(ctx, "POST", x.repoURL(repo, "/pipelines_config/schedules"), body)
	if err != nil {
		return nil, err
	}

	var created schedule
	if err := resp.decode(&created); err != nil {
		return nil, goerr.Wrap(err, "failed to create schedule",
			goerr.V("repo", repo),
			goerr.V("branch", input.Branch),
		)
	}

	logging.From(ctx).Debug("Created schedule",
		slog.String("repo", repo.String()),
		slog.String("uuid", created.UUID),
	)
	return created.toModel(), nil
}

// DeleteSchedule implements interfaces.BuildHost. Bitbucket answers 204 No Content on success.
// https://developer.atlassian.com/cloud/bitbucket/rest/api-group-pipelines/#api-repositories-workspace-repo-slug-pipelines-config-schedules-schedule-uuid-delete
func (x *Client) DeleteSchedule(ctx context.Context, repo types.RepoSlug, id types.ScheduleID) error {
	resp, err := x.request(ctx, "DELETE", x.repoURL(repo, "/pipelines_config/schedules/"+url.PathEscape(id.String())), nil)
	if err != nil {
		return err
	}

	if resp.status == http.StatusNoContent && len(resp.body) == 0 {
		return nil
	}
	if err := resp.decode(nil); err != nil {
		return goerr.Wrap(err, "failed to delete schedule",
			goerr.V("repo", repo),
			goerr.V("uuid", id),
		)
	}

	return nil
}
