package jwt

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

var claimsContextKey = &contextKey{name: "jwt_claims"}

// SetClaims stores verified claims in the context.
func SetClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext returns the verified claims placed in the context by
// the middleware. The second return value is false when no claims are set.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(Claims)
	return claims, ok
}

// SubjectFromContext returns the authenticated subject from the context,
// or an empty string when the request carries no verified token.
func SubjectFromContext(ctx context.Context) string {
	claims, _ := ClaimsFromContext(ctx)
	return claims.Subject
}
