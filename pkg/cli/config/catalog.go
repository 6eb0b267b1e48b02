package config

import (
	"log/slog"

	"github.com/m-mizutani/pipesched/pkg/domain/types"
	"github.com/m-mizutani/pipesched/pkg/infra/catalog"
	"github.com/urfave/cli/v3"
)

type Catalog struct {
	apiKey types.DatadogAPIKey `masq:"secret"`
	appKey types.DatadogAppKey `masq:"secret"`
	site   types.DatadogSite
}

func (x *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "datadog-api-key",
			Usage:       "Datadog API key for the service catalog",
			Category:    "Datadog",
			Destination: (*string)(&x.apiKey),
			Sources:     cli.EnvVars("DD_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "datadog-app-key",
			Usage:       "Datadog application key for the service catalog",
			Category:    "Datadog",
			Destination: (*string)(&x.appKey),
			Sources:     cli.EnvVars("DD_APP_KEY"),
		},
		&cli.StringFlag{
			Name:        "datadog-site",
			Usage:       "Datadog site",
			Category:    "Datadog",
			Destination: (*string)(&x.site),
			Sources:     cli.EnvVars("DD_SITE"),
			Value:       string(types.DefaultDatadogSite),
		},
	}
}

// New returns nil without error if the keys are not set. The catalog is
// then unavailable and repositories must be given explicitly.
func (x *Catalog) New() (*catalog.Client, error) {
	if x.apiKey == "" && x.appKey == "" {
		return nil, nil
	}
	return catalog.New(x.site, x.apiKey, x.appKey)
}

func (x Catalog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Site", string(x.site)),
		slog.Int("APIKey.len", len(x.apiKey)),
		slog.Int("AppKey.len", len(x.appKey)),
	)
}
