package server

import (
	"context"
)

// DetachContext returns a context that keeps the values of ctx, such as the
// logger, request ID and time function, but is not cancelled with it. A
// reconciliation started by a request runs to the end even if the client
// goes away.
func DetachContext(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
