package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipesched/pkg/domain/interfaces"
	"github.com/m-mizutani/pipesched/pkg/domain/model"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
)

// SchemaVersion of service definitions requested from the catalog
const SchemaVersion = datadogV2.SERVICEDEFINITIONSCHEMAVERSIONS_V2_1

// Client reads service definitions from the Datadog service catalog
type Client struct {
	config *datadog.Configuration
	api    *datadogV2.ServiceDefinitionApi
	site   types.DatadogSite
	apiKey types.DatadogAPIKey
	appKey types.DatadogAppKey
}

var _ interfaces.ServiceCatalog = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.config.HTTPClient = client
	}
}

// WithBaseURL replaces the site based API endpoint, e.g. with a test server
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.config.Servers = datadog.ServerConfigurations{
			{URL: baseURL, Description: "override"},
		}
	}
}

func New(site types.DatadogSite, apiKey types.DatadogAPIKey, appKey types.DatadogAppKey, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Datadog API key is empty")
	}
	if appKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Datadog application key is empty")
	}
	if site == "" {
		site = types.DefaultDatadogSite
	}

	client := &Client{
		config: datadog.NewConfiguration(),
		site:   site,
		apiKey: apiKey,
		appKey: appKey,
	}
	for _, opt := range options {
		opt(client)
	}
	client.api = datadogV2.NewServiceDefinitionApi(datadog.NewAPIClient(client.config))

	return client, nil
}

func (x *Client) apiContext(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, datadog.ContextAPIKeys, map[string]datadog.APIKey{
		"apiKeyAuth": {Key: string(x.apiKey)},
		"appKeyAuth": {Key: string(x.appKey)},
	})
	return context.WithValue(ctx, datadog.ContextServerVariables, map[string]string{
		"site": string(x.site),
	})
}

// ListServiceDefinitions implements interfaces.ServiceCatalog. Pages are numbered from 0.
// https://docs.datadoghq.com/api/latest/service-definition/#get-all-service-definitions
func (x *Client) ListServiceDefinitions(ctx context.Context, page int) ([]*model.ServiceDefinition, error) {
	logging.From(ctx).Debug("Sending service catalog request", slog.Int("page", page))

	params := datadogV2.NewListServiceDefinitionsOptionalParameters().
		WithPageNumber(int64(page)).
		WithSchemaVersion(SchemaVersion)

	resp, httpResp, err := x.api.ListServiceDefinitions(x.apiContext(ctx), *params)
	if err != nil {
		return nil, wrapAPIError(err, httpResp, page)
	}

	// A successful status can still carry an `errors` member, even an empty one
	if errs, ok := resp.AdditionalProperties["errors"]; ok && errs != nil {
		raw, err := json.Marshal(resp.AdditionalProperties)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode errors member", goerr.V("page", page))
		}
		if msg, ok := errorsMember(raw); ok {
			return nil, goerr.Wrap(types.ErrRemoteAPI, msg,
				goerr.V("status", statusCode(httpResp)),
				goerr.V("page", page),
			)
		}
	}

	defs := make([]*model.ServiceDefinition, 0, len(resp.Data))
	for _, d := range resp.Data {
		def, err := toServiceDefinition(d)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read service definition", goerr.V("page", page))
		}
		if def == nil {
			continue
		}
		defs = append(defs, def)
	}

	return defs, nil
}

// schemaV2Dot1 is the subset of a v2.1 schema used when the SDK could not
// type the schema, e.g. because of a link type it does not know.
type schemaV2Dot1 struct {
	Name  string `json:"dd-service"`
	Links []struct {
		Name string `json:"name"`
		Type string `json:"type"`
		URL  string `json:"url"`
	} `json:"links"`
}

func toServiceDefinition(d datadogV2.ServiceDefinitionData) (*model.ServiceDefinition, error) {
	if d.Attributes == nil || d.Attributes.Schema == nil {
		return nil, nil
	}
	schema := d.Attributes.Schema

	if v := schema.ServiceDefinitionV2Dot1; v != nil {
		def := &model.ServiceDefinition{Name: v.DdService}
		for _, link := range v.Links {
			def.Links = append(def.Links, model.ServiceLink{
				Name: link.Name,
				Type: string(link.Type),
				URL:  link.Url,
			})
		}
		return def, nil
	}

	if schema.UnparsedObject == nil {
		return nil, nil
	}
	raw, err := json.Marshal(schema.UnparsedObject)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode unparsed schema")
	}
	var v schemaV2Dot1
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, goerr.Wrap(err, "failed to decode unparsed schema", goerr.V("schema", string(raw)))
	}

	def := &model.ServiceDefinition{Name: v.Name}
	for _, link := range v.Links {
		def.Links = append(def.Links, model.ServiceLink{
			Name: link.Name,
			Type: link.Type,
			URL:  link.URL,
		})
	}
	return def, nil
}

// wrapAPIError maps an SDK failure. A body with an `errors` member is
// ErrRemoteAPI, any other response is ErrUnexpectedStatus.
func wrapAPIError(err error, httpResp *http.Response, page int) error {
	var apiErr datadog.GenericOpenAPIError
	if !errors.As(err, &apiErr) {
		return goerr.Wrap(err, "failed to send request", goerr.V("page", page))
	}

	status := statusCode(httpResp)
	if msg, ok := errorsMember(apiErr.Body()); ok {
		return goerr.Wrap(types.ErrRemoteAPI, msg,
			goerr.V("status", status),
			goerr.V("page", page),
		)
	}

	return goerr.Wrap(types.ErrUnexpectedStatus, http.StatusText(status),
		goerr.V("status", status),
		goerr.V("page", page),
		goerr.V("error", apiErr.Error()),
	)
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// errorsMember reports whether body has a non-null `errors` member and returns
// the message of its first element.
func errorsMember(body []byte) (string, bool) {
	var envelope struct {
		Errors *[]json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Errors == nil {
		return "", false
	}
	if len(*envelope.Errors) == 0 {
		return "empty errors member", true
	}
	return errorMessage((*envelope.Errors)[0]), true
}

// errorMessage extracts a message from an element of `errors`, which is either
// a plain string or an object with a `detail` or `title` member.
func errorMessage(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Detail != "" {
			return obj.Detail
		}
		if obj.Title != "" {
			return obj.Title
		}
	}
	return string(raw)
}
