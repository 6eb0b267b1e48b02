package bitbucket

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipesched/pkg/domain/model"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
)

type pipeline struct {
	UUID      string `json:"uuid"`
	CreatedOn string `json:"created_on"`
	Trigger   struct {
		Name string `json:"name"`
	} `json:"trigger"`
}

// ListPipelines implements interfaces.BuildHost. Only the first page, the most
// recent pipelines, is fetched.
// https://developer.atlassian.com/cloud/bitbucket/rest/api-group-pipelines/#api-repositories-workspace-repo-slug-pipelines-get
func (x *Client) ListPipelines(ctx context.Context, repo types.RepoSlug) ([]*model.Pipeline, error) {
	resp, err := x.request(ctx, "GET", x.repoURL(repo, "/pipelines?sort=-created_on"), nil)
	if err != nil {
		return nil, err
	}

	var result page[pipeline]
	if err := resp.decode(&result); err != nil {
		return nil, goerr.Wrap(err, "failed to list pipelines", goerr.V("repo", repo))
	}

	pipelines := make([]*model.Pipeline, 0, len(result.Values))
	for _, p := range result.Values {
		createdOn, err := time.Parse(time.RFC3339Nano, p.CreatedOn)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid created_on of pipeline",
				goerr.V("repo", repo),
				goerr.V("uuid", p.UUID),
				goerr.V("created_on", p.CreatedOn),
			)
		}

		pipelines = append(pipelines, &model.Pipeline{
			UUID:      p.UUID,
			CreatedOn: createdOn.UTC(),
			Trigger:   types.TriggerName(p.Trigger.Name),
		})
	}

	return pipelines, nil
}
