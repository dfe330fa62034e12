package domain

import (
	"fmt"

	"github.com/allisson/mailadmin/internal/errors"
)

// ErrEntryNotFound indicates an entry lookup came back empty. Callers that
// know the requested address wrap it with the subject-bearing not-found error.
var ErrEntryNotFound = errors.Wrap(errors.ErrNotFound, "mail entry not found")

// NotLoginOrAccountError indicates a secret mutation on an entry whose kind
// doesn't carry one.
type NotLoginOrAccountError struct {
	Entry string
}

func (e *NotLoginOrAccountError) Error() string {
	return fmt.Sprintf("not a login or account: %s", e.Entry)
}

func (e *NotLoginOrAccountError) Unwrap() error { return errors.ErrInvalidInput }

// NotAliasError indicates an expansion mutation on an entry whose kind doesn't
// carry a member list.
type NotAliasError struct {
	Entry string
}

func (e *NotAliasError) Error() string {
	return fmt.Sprintf("not an alias: %s", e.Entry)
}

func (e *NotAliasError) Unwrap() error { return errors.ErrInvalidInput }

// NotReasonBearingError indicates a reason mutation on an entry whose kind
// doesn't carry one.
type NotReasonBearingError struct {
	Entry string
}

func (e *NotReasonBearingError) Error() string {
	return fmt.Sprintf("not a reason-bearing entry: %s", e.Entry)
}

func (e *NotReasonBearingError) Unwrap() error { return errors.ErrInvalidInput }

// AliasComponentNotFoundError indicates a member removal that matched nothing.
type AliasComponentNotFoundError struct {
	Member string
}

func (e *AliasComponentNotFoundError) Error() string {
	return fmt.Sprintf("alias component %s was not found", e.Member)
}

func (e *AliasComponentNotFoundError) Unwrap() error { return errors.ErrInvalidInput }

// AliasWouldBecomeEmptyError indicates a removal that would leave an alias or
// list with no members. An alias must always resolve to at least one member.
type AliasWouldBecomeEmptyError struct {
	Entry string
}

func (e *AliasWouldBecomeEmptyError) Error() string {
	return fmt.Sprintf("cannot remove last component, alias %s would become empty", e.Entry)
}

func (e *AliasWouldBecomeEmptyError) Unwrap() error { return errors.ErrInvalidInput }
