package logging

import (
	"context"
	"log/slog"
	"sync"
)

type bufferedRecord struct {
	handler slog.Handler
	record  slog.Record
}

type recordBuffer struct {
	mu      sync.Mutex
	records []bufferedRecord
}

// bufferedHandler holds records in memory until Flush is called. Attributes
// and groups are applied to the wrapped handler so that replayed records are
// rendered exactly as they would have been without buffering.
type bufferedHandler struct {
	target slog.Handler
	buf    *recordBuffer
}

func (x *bufferedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return x.target.Enabled(ctx, level)
}

func (x *bufferedHandler) Handle(_ context.Context, r slog.Record) error {
	x.buf.mu.Lock()
	defer x.buf.mu.Unlock()
	x.buf.records = append(x.buf.records, bufferedRecord{handler: x.target, record: r.Clone()})
	return nil
}

func (x *bufferedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &bufferedHandler{target: x.target.WithAttrs(attrs), buf: x.buf}
}

func (x *bufferedHandler) WithGroup(name string) slog.Handler {
	return &bufferedHandler{target: x.target.WithGroup(name), buf: x.buf}
}

// FlushFunc writes buffered records to the original handler and empties the buffer
type FlushFunc func(ctx context.Context)

// Buffered returns a logger that keeps records of logger in memory and a
// function to emit them. Records are emitted in the order they were logged.
func Buffered(logger *slog.Logger) (*slog.Logger, FlushFunc) {
	buf := &recordBuffer{}
	h := &bufferedHandler{target: logger.Handler(), buf: buf}

	flush := func(ctx context.Context) {
		buf.mu.Lock()
		records := buf.records
		buf.records = nil
		buf.mu.Unlock()

		for _, r := range records {
			_ = r.handler.Handle(ctx, r.record)
		}
	}

	return slog.New(h), flush
}
