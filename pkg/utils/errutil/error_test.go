package errutil_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pipesched/pkg/utils/errutil"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
)

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		ctx := context.Background()
		err := errors.New("test error")

		// Should not panic
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle nil error", func(t *testing.T) {
		ctx := context.Background()

		// Should not panic
		errutil.HandleError(ctx, "test message", nil)
	})

	t.Run("error is logged with context logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := logging.With(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

		err := goerr.New("branch lookup failed", goerr.V("repo", "svc-a"))
		errutil.HandleError(ctx, "Failed to get default branch", err)

		gt.S(t, buf.String()).Contains("Failed to get default branch")
		gt.S(t, buf.String()).Contains("branch lookup failed")
	})
}
