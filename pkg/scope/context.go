package scope

import (
	"context"

	"insight-srv/internal/model"
)

type payloadKey struct{}
type scopeKey struct{}
type tokenKey struct{}

func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadKey{}).(Payload)
	return payload, ok
}

func SetScopeToContext(ctx context.Context, scope model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

func GetScopeFromContext(ctx context.Context) model.Scope {
	scope, _ := ctx.Value(scopeKey{}).(model.Scope)
	return scope
}

// SetTokenToContext keeps the caller's bearer token so it can be forwarded upstream.
func SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func GetTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
