package domain

import (
	"fmt"

	"github.com/allisson/mailadmin/internal/errors"
)

// Authentication and token management errors. Parametrized kinds are typed so
// callers can pick them out with errors.As; each unwraps to one of the
// internal/errors sentinels, which fixes its HTTP category.
var (
	// ErrNoToken indicates the request carried no bearer token at all.
	ErrNoToken = errors.Wrap(errors.ErrUnauthorized, "no bearer token provided")

	// ErrTokenNotFound indicates a token row lookup came back empty.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrUserNotFound indicates the token's owning user row is missing.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")
)

// BadAuthTokenError indicates the presented bearer token matches no stored token.
type BadAuthTokenError struct {
	Token string
}

func (e *BadAuthTokenError) Error() string {
	return fmt.Sprintf("authentication failed, bad token provided: %s", e.Token)
}

func (e *BadAuthTokenError) Unwrap() error { return errors.ErrUnauthorized }

// TokenInUseError indicates an attempt to revoke the token that is
// authenticating the current request.
type TokenInUseError struct {
	Token string
}

func (e *TokenInUseError) Error() string {
	return fmt.Sprintf("authentication token is in use: %s", e.Token)
}

func (e *TokenInUseError) Unwrap() error { return errors.ErrInvalidInput }

// BadTokenError indicates a revocation target that does not exist or is not
// owned by the caller. The two cases are deliberately indistinguishable so a
// caller cannot probe other users' tokens.
type BadTokenError struct {
	Token string
}

func (e *BadTokenError) Error() string {
	return fmt.Sprintf("bad token: %s", e.Token)
}

func (e *BadTokenError) Unwrap() error { return errors.ErrForbidden }

// PermissionDeniedError indicates the identity is not allowed to act on the subject.
type PermissionDeniedError struct {
	Subject string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied accessing: %s", e.Subject)
}

func (e *PermissionDeniedError) Unwrap() error { return errors.ErrForbidden }
