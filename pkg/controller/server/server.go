package server

import (
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/pipesched/pkg/domain/interfaces"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	debugOutput io.Writer
}

type Option func(*config)

// WithDebugOutput sets the writer of debug logs for invocations with verbose enabled
func WithDebugOutput(w io.Writer) Option {
	return func(cfg *config) {
		cfg.debugOutput = w
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		debugOutput: logging.Output(),
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Post("/invoke", handleInvoke(uc, cfg))

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
