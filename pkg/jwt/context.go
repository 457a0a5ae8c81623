package jwt

import "context"

type claimsCtxKey struct{}

// SetClaimsToContext stores verified claims in ctx.
func SetClaimsToContext(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey{}, c)
}

// GetClaimsFromContext returns the claims stored by SetClaimsToContext.
func GetClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsCtxKey{}).(*Claims)
	return c, ok && c != nil
}
