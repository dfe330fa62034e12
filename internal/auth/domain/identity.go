// Package domain defines authentication and authorization domain models.
//
// Every administrative request is resolved to an Identity before anything
// domain-scoped runs; the Identity is then handed to use cases as an explicit
// argument, never read back out of ambient request state.
package domain

// Identity is the resolved caller of one administrative request. It is derived
// from the stored user and auth token rows, immutable for the lifetime of the
// request, and never persisted as such.
type Identity struct {
	// Token is the bearer token that authenticated this request.
	Token string
	// UserID is the id of the owning user row.
	UserID int64
	// Username is the unique login name of the user.
	Username string
	// IsSuperuser marks identities permitted cross-tenant actions.
	IsSuperuser bool
}

// AuthToken is a long-lived bearer credential owned by a user. A user may hold
// any number of tokens; the token value is random and unique across all users.
type AuthToken struct {
	ID     int64
	UserID int64
	Token  string
	Label  string
}
