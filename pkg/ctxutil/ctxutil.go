package ctxutil

import (
	"context"
)

type ctxKey string

const (
	userIDHashKey ctxKey = "user_id_hash"
	requestIDKey  ctxKey = "request_id"
)

// WithUserIDHash stores the authenticated user's id hash in the context.
func WithUserIDHash(ctx context.Context, hash string) context.Context {
	return context.WithValue(ctx, userIDHashKey, hash)
}

// UserIDHashFromCtx extracts the user id hash from the context.
// Returns "" and false if the value is missing, empty, or wrong type.
func UserIDHashFromCtx(ctx context.Context) (string, bool) {
	hash, ok := ctx.Value(userIDHashKey).(string)
	if !ok || hash == "" {
		return "", false
	}
	return hash, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
