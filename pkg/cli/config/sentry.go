package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// sentryFlushTimeout bounds how long a finished run waits for queued events
const sentryFlushTimeout = 2 * time.Second

type Sentry struct {
	dsn         string
	environment string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("PIPESCHED_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("PIPESCHED_SENTRY_ENV"),
		},
	}
}

// Configure initializes the Sentry client. Errors are only logged when DSN is empty.
func (x *Sentry) Configure(ctx context.Context) error {
	if x.dsn == "" {
		logging.From(ctx).Warn("sentry is not configured")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry", goerr.V("environment", x.environment))
	}

	return nil
}

// Flush waits for queued events to be sent. It is a no-op when Sentry is not configured.
func (x *Sentry) Flush() {
	if x.dsn == "" {
		return
	}
	sentry.Flush(sentryFlushTimeout)
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("Enabled", x.dsn != ""),
		slog.Any("Environment", x.environment),
	)
}
