package bitbucket

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
)

type branch struct {
	Name string `json:"name"`
}

// branchQuery builds a BBQL filter such as `name="main" OR name="master"`
func branchQuery(names []types.BranchName) string {
	terms := make([]string, len(names))
	for i, name := range names {
		terms[i] = fmt.Sprintf("name=%q", name)
	}
	return strings.Join(terms, " OR ")
}

// ListBranches implements interfaces.BuildHost.
// https://developer.atlassian.com/cloud/bitbucket/rest/api-group-refs/#api-repositories-workspace-repo-slug-refs-branches-get
func (x *Client) ListBranches(ctx context.Context, repo types.RepoSlug, names []types.BranchName) ([]types.BranchName, error) {
	q := url.Values{}
	if len(names) > 0 {
		q.Set("q", branchQuery(names))
	}
	reqURL := x.repoURL(repo, "/refs/branches")
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	resp, err := x.request(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	var result page[branch]
	if err := resp.decode(&result); err != nil {
		return nil, goerr.Wrap(err, "failed to list branches", goerr.V("repo", repo))
	}

	branches := make([]types.BranchName, 0, len(result.Values))
	for _, b := range result.Values {
		branches = append(branches, types.BranchName(b.Name))
	}
	return branches, nil
}
