package config

import (
	"log/slog"

	"github.com/m-mizutani/pipesched/pkg/domain/types"
	"github.com/m-mizutani/pipesched/pkg/infra/bitbucket"
	"github.com/urfave/cli/v3"
)

type Bitbucket struct {
	workspace types.Workspace
	user      types.BitbucketUserID
	password  types.BitbucketAppPassword `masq:"secret"`
	apiURL    string
	cron      types.CronPattern
}

func (x *Bitbucket) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "workspace",
			Usage:       "Bitbucket workspace of the repositories",
			Category:    "Bitbucket",
			Destination: (*string)(&x.workspace),
			Sources:     cli.EnvVars("PIPESCHED_WORKSPACE"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "bitbucket-user",
			Usage:       "Bitbucket user ID",
			Category:    "Bitbucket",
			Destination: (*string)(&x.user),
			Sources:     cli.EnvVars("BB_USER_ID"),
		},
		&cli.StringFlag{
			Name:        "bitbucket-app-password",
			Usage:       "Bitbucket app password",
			Category:    "Bitbucket",
			Destination: (*string)(&x.password),
			Sources:     cli.EnvVars("BB_APP_PASS"),
		},
		&cli.StringFlag{
			Name:        "bitbucket-api-url",
			Usage:       "Bitbucket API base URL",
			Category:    "Bitbucket",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("PIPESCHED_BITBUCKET_API_URL"),
			Value:       bitbucket.DefaultBaseURL,
		},
		&cli.StringFlag{
			Name:        "cron",
			Usage:       "Cron pattern of the weekly schedule (7 fields)",
			Category:    "Bitbucket",
			Destination: (*string)(&x.cron),
			Sources:     cli.EnvVars("PIPESCHED_CRON"),
			Value:       types.DefaultCronPattern.String(),
		},
	}
}

func (x *Bitbucket) New() (*bitbucket.Client, error) {
	return bitbucket.New(x.workspace, x.user, x.password,
		bitbucket.WithBaseURL(x.apiURL),
	)
}

// CronPattern returns the validated cron pattern of the managed schedule
func (x *Bitbucket) CronPattern() (types.CronPattern, error) {
	if err := x.cron.Validate(); err != nil {
		return "", err
	}
	return x.cron, nil
}

func (x Bitbucket) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Workspace", x.workspace.String()),
		slog.String("User", string(x.user)),
		slog.Int("Password.len", len(x.password)),
		slog.String("APIURL", x.apiURL),
		slog.String("Cron", x.cron.String()),
	)
}
