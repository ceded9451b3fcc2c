package transport

import (
	"context"

	"github.com/google/uuid"
)

type (
	contextKey string
)

const (
	// RequestIDHeader correlates a logical call, including its replay.
	RequestIDHeader = "X-Request-ID"

	ContextRequestIDKey contextKey = "requestID"
)

// WithRequestID returns a context carrying request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextRequestIDKey, requestID)
}

func getRequestID(ctx context.Context) string {
	if v := ctx.Value(ContextRequestIDKey); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return uuid.NewString()
}
