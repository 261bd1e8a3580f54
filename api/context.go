package api

import (
	"context"
)

type keyType string

const requestIDKey keyType = "requestID"

// ctxWithRequestID adds a request ID to the context
func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// requestIDFromCtx retrieves the request ID, or "" when none was set
func requestIDFromCtx(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}
