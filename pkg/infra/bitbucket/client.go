package bitbucket

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipesched/pkg/domain/interfaces"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
	"github.com/m-mizutani/pipesched/pkg/utils/safe"
)

const DefaultBaseURL = "https://api.bitbucket.org"

// maxSchedulePages bounds how many `next` links are followed when listing schedules
const maxSchedulePages = 20

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a Bitbucket Cloud REST API 2.0 client scoped to a single workspace
type Client struct {
	httpClient HTTPClient
	baseURL    string
	workspace  types.Workspace
	user       types.BitbucketUserID
	password   types.BitbucketAppPassword
}

var _ interfaces.BuildHost = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func New(workspace types.Workspace, user types.BitbucketUserID, password types.BitbucketAppPassword, options ...Option) (*Client, error) {
	if workspace == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "workspace is empty")
	}

	client := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		workspace:  workspace,
		user:       user,
		password:   password,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) repoURL(repo types.RepoSlug, suffix string) string {
	return x.baseURL + "/2.0/repositories/" + url.PathEscape(x.workspace.String()) + "/" + url.PathEscape(repo.String()) + suffix
}

type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	} `json:"error"`
}

type response struct {
	status int
	reason string
	body   []byte
}

func (x *Client) request(ctx context.Context, method, reqURL string, body any) (*response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to marshal request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", reqURL))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if x.user != "" || x.password != "" {
		req.SetBasicAuth(string(x.user), string(x.password))
	}

	logging.From(ctx).Debug("Sending Bitbucket request",
		slog.String("method", method),
		slog.String("url", reqURL),
	)

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send request", goerr.V("method", method), goerr.V("url", reqURL))
	}
	defer safe.Close(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body", goerr.V("url", reqURL))
	}

	return &response{
		status: resp.StatusCode,
		reason: http.StatusText(resp.StatusCode),
		body:   raw,
	}, nil
}

// decode interprets a response body. An `error` member is reported as
// ErrRemoteAPI with the remote message; a body that is not JSON, or a
// failure status without an envelope, is reported as ErrUnexpectedStatus.
func (r *response) decode(out any) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(r.body, &envelope); err != nil {
		return goerr.Wrap(types.ErrUnexpectedStatus, r.reason,
			goerr.V("status", r.status),
			goerr.V("body", truncate(r.body)),
		)
	}
	if envelope.Error != nil {
		return goerr.Wrap(types.ErrRemoteAPI, envelope.Error.Message,
			goerr.V("status", r.status),
			goerr.V("detail", envelope.Error.Detail),
		)
	}
	if r.status < 200 || r.status >= 300 {
		return goerr.Wrap(types.ErrUnexpectedStatus, r.reason,
			goerr.V("status", r.status),
			goerr.V("body", truncate(r.body)),
		)
	}

	if out != nil {
		if err := json.Unmarshal(r.body, out); err != nil {
			return goerr.Wrap(err, "failed to decode response", goerr.V("body", truncate(r.body)))
		}
	}
	return nil
}

func truncate(body []byte) string {
	const limit = 512
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}

type page[T any] struct {
	Values []T    `json:"values"`
	Next   string `json:"next"`
}
