package log

import "context"

// WithRequestID stores id so every entry logged with the returned context carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}
