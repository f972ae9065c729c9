package authz

import (
	"context"

	"veteranapp.org/internal/identity"
)

type principalContextKey struct{}
type tokenContextKey struct{}

// ContextWithPrincipal attaches the authenticated principal to the context.
func ContextWithPrincipal(ctx context.Context, user identity.User) context.Context {
	return context.WithValue(ctx, principalContextKey{}, &user)
}

// PrincipalFromContext extracts the authenticated principal from the context.
func PrincipalFromContext(ctx context.Context) (identity.User, bool) {
	if ctx == nil {
		return identity.User{}, false
	}
	v, ok := ctx.Value(principalContextKey{}).(*identity.User)
	if !ok || v == nil {
		return identity.User{}, false
	}
	return *v, true
}

// ContextWithToken stores the raw bearer token inside the context so scoped
// handlers can re-run full authorization against a requested organization.
func ContextWithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the bearer token if it was previously attached.
func TokenFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(tokenContextKey{}).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
