package bagabo

import "context"

var identityCtxKey = &contextKey{"identity"}

type contextKey struct {
	name string
}

// WithIdentity sets the Identity in the given context.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, identity)
}

// IdentityFromContext finds the identity from the context. Activity
// sinks receive a context carrying the session identity when one is
// signed in.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	raw, ok := ctx.Value(identityCtxKey).(Identity)
	return raw, ok
}

// IsAdminContext reports whether the context carries an admin identity.
func IsAdminContext(ctx context.Context) bool {
	identity, ok := IdentityFromContext(ctx)
	return ok && identity.IsAdmin()
}
