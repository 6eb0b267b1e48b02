package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipesched/pkg/domain/interfaces"
	"github.com/m-mizutani/pipesched/pkg/domain/model"
	"github.com/m-mizutani/pipesched/pkg/domain/types"
	"github.com/m-mizutani/pipesched/pkg/utils/errutil"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
)

// maxEventSize limits the body of an invocation event
const maxEventSize = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

func decodeEvent(r *http.Request) (*model.Event, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxEventSize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read event")
	}

	var event model.Event
	if len(raw) == 0 {
		return &event, nil
	}
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid event JSON", goerr.V("error", err.Error()))
	}
	return &event, nil
}

func handleInvoke(uc interfaces.UseCase, cfg *config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := decodeEvent(r)
		if err != nil {
			logging.From(r.Context()).Warn("fail to decode event", slog.Any("error", err))
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		ctx := DetachContext(r.Context())
		if event.Verbose {
			requestID, _ := logging.CtxRequestID(ctx)
			logger := logging.NewLogger(cfg.debugOutput, slog.LevelDebug).
				With(slog.String("request_id", requestID.String()))
			ctx = logging.With(ctx, logger)
		}

		results, err := uc.Reconcile(ctx, event.ToInput())
		if err != nil {
			if errors.Is(err, types.ErrInvalidOption) {
				logging.From(ctx).Warn("invalid reconcile input", slog.Any("error", err))
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
				return
			}
			errutil.HandleError(ctx, "fail to reconcile", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		if results == nil {
			results = []*model.RepoResult{}
		}
		writeJSON(w, http.StatusOK, results)
	}
}
