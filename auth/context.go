package auth

import "context"

// Principal is the authenticated identity attached to a request after token
// verification and user lookup both succeed. It is built from the looked-up
// database row, not from the raw token claims, and lives only for the
// duration of the request.
type Principal struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type principalKey struct{}

// NewContextWithPrincipal returns a child context carrying p.
func NewContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the Principal attached by the auth
// middleware. ok is false on anonymous requests.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok
}
