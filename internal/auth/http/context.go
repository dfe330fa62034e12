// Package http provides HTTP middleware and handlers for authentication and
// token management.
package http

import (
	"context"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
)

// identityKey is a context key type for storing resolved identities.
type identityKey struct{}

// WithIdentity stores a resolved identity in the context. Called by the
// authentication middleware after token resolution; handlers pull the identity
// back out once and pass it to use cases as an explicit argument.
func WithIdentity(ctx context.Context, identity *authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the resolved identity from the context. Returns
// (nil, false) when the authentication middleware has not run.
func GetIdentity(ctx context.Context) (*authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.Identity)
	return identity, ok
}
