package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pipesched/pkg/controller/server"
	"github.com/m-mizutani/pipesched/pkg/domain/mock"
	"github.com/m-mizutani/pipesched/pkg/utils/logging"
)

func TestMiddleware(t *testing.T) {
	t.Run("preProcess sets logger and request ID", func(t *testing.T) {
		var capturedCtx context.Context

		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

		gt.V(t, logging.From(capturedCtx) == logging.From(context.Background())).Equal(false)

		id1, _ := logging.CtxRequestID(capturedCtx)
		id2, _ := logging.CtxRequestID(capturedCtx)
		gt.V(t, id1).NotEqual("")
		gt.V(t, id1).Equal(id2)
	})

	t.Run("status code is passed through", func(t *testing.T) {
		testCases := map[string]int{
			"ok":        http.StatusOK,
			"not found": http.StatusNotFound,
			"error":     http.StatusInternalServerError,
		}

		for name, code := range testCases {
			t.Run(name, func(t *testing.T) {
				srv := server.New(&mock.UseCaseMock{})
				mux := srv.Mux()
				mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(code)
				})

				w := httptest.NewRecorder()
				mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
				gt.V(t, w.Code).Equal(code)
			})
		}
	})

	t.Run("defaults to 200 when WriteHeader is not called", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/noheader", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/noheader", nil))
		gt.V(t, w.Code).Equal(http.StatusOK)
	})
}
