// Package service provides technical services for authentication operations.
package service

import (
	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
)

// TokenService defines operations for bearer token generation.
// Implementations must use cryptographically secure random generation.
type TokenService interface {
	// GenerateToken creates a new random bearer token. The token is returned
	// exactly as it will be stored; lookups compare the stored value directly.
	GenerateToken() (string, error)
}

// AuditSigner signs and verifies audit log records.
type AuditSigner interface {
	// Sign computes the signature over the canonical representation of the log.
	Sign(log *authDomain.AuditLog) (string, error)

	// Verify reports whether the log's stored signature matches its contents.
	Verify(log *authDomain.AuditLog) (bool, error)
}
