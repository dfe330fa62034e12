// Package domain defines the user domain model.
//
// Users are administrative accounts, not mailboxes: they own domains and hold
// bearer tokens. Mail logins live in the mail entry module.
package domain

import (
	"fmt"

	"github.com/allisson/mailadmin/internal/errors"
)

// User is an administrative account.
type User struct {
	ID          int64
	Username    string
	IsSuperuser bool
}

// ErrUserNotFound indicates a user lookup came back empty.
var ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

// UserAlreadyExistsError indicates a creation attempt with a taken username.
type UserAlreadyExistsError struct {
	Username string
}

func (e *UserAlreadyExistsError) Error() string {
	return fmt.Sprintf("user already exists: %s", e.Username)
}

func (e *UserAlreadyExistsError) Unwrap() error { return errors.ErrConflict }
