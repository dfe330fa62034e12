// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	userDomain "github.com/allisson/mailadmin/internal/user/domain"
)

// TokenRepository defines persistence operations for auth tokens.
type TokenRepository interface {
	Create(ctx context.Context, token *authDomain.AuthToken) error
	GetByToken(ctx context.Context, token string) (*authDomain.AuthToken, error)
	ListByUser(ctx context.Context, userID int64) ([]*authDomain.AuthToken, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the user lookups the auth flow needs.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*userDomain.User, error)
}

// AuditLogRepository defines persistence operations for audit records.
type AuditLogRepository interface {
	Create(ctx context.Context, log *authDomain.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]*authDomain.AuditLog, error)
}

// TokenUseCase manages bearer tokens and resolves them to identities.
type TokenUseCase interface {
	// Resolve maps a presented bearer token to the identity it authenticates.
	// This is the mandatory gate in front of every domain-scoped operation.
	Resolve(ctx context.Context, presentedToken string) (*authDomain.Identity, error)

	// List returns the caller's own tokens.
	List(ctx context.Context, identity *authDomain.Identity) ([]*authDomain.AuthToken, error)

	// Create issues a new token for the caller with the given label.
	Create(ctx context.Context, identity *authDomain.Identity, label string) (*authDomain.AuthToken, error)

	// Revoke removes one of the caller's tokens and returns its label. The
	// token authenticating the revoke request itself cannot be revoked.
	Revoke(ctx context.Context, identity *authDomain.Identity, token string) (string, error)
}

// AuditLogUseCase records and lists the signed administrative audit trail.
type AuditLogUseCase interface {
	Record(ctx context.Context, log *authDomain.AuditLog) error
	List(ctx context.Context, identity *authDomain.Identity, limit, offset int) ([]*authDomain.AuditLog, error)
}
