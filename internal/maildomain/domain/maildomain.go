// Package domain defines the mail domain model and its per-domain settings.
package domain

import (
	"fmt"

	"github.com/allisson/mailadmin/internal/errors"
)

// MailDomain is one hosted mail domain and its delivery settings. The owner
// administers the domain; only a superuser may hand it to someone else.
type MailDomain struct {
	ID            int64
	OwnerUserID   int64
	Name          string
	RemoteRelay   *string
	SenderVerify  bool
	GreyListing   bool
	VirusCheck    bool
	SpamThreshold int
}

// Creation defaults, matching what existing deployments expect for a fresh
// domain.
const (
	DefaultSenderVerify  = true
	DefaultGreyListing   = false
	DefaultVirusCheck    = true
	DefaultSpamThreshold = 100
)

// AllowDenyEntry is one per-domain sender allow/deny rule. This module only
// reads these; they are maintained by the reporting pipeline.
type AllowDenyEntry struct {
	ID       int64
	DomainID int64
	Allow    bool
	Value    string
}

// ErrDomainNotFound indicates a domain lookup came back empty. Callers that
// know the requested name wrap it with NotFoundError instead.
var ErrDomainNotFound = errors.Wrap(errors.ErrNotFound, "domain not found")

// NotFoundError carries the subject of a failed lookup.
type NotFoundError struct {
	Subject string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry not found: %s", e.Subject)
}

func (e *NotFoundError) Unwrap() error { return errors.ErrNotFound }
