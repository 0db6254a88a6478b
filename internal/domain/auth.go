package domain

import "context"

type AuthService interface {
	ValidateToken(token string) (*SupabaseUser, error)
}

type accessTokenKey struct{}

// WithAccessToken stores the caller's bearer token in ctx so repositories
// can run row-level-security-scoped queries as that user.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFromContext returns the bearer token stored by the auth
// middleware, if any.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	return token, ok && token != ""
}
