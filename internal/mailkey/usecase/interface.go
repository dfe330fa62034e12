// Package usecase implements business logic orchestration for domain keys.
package usecase

import (
	"context"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/mailkey/domain"
)

// KeyRepository defines persistence operations for domain keys.
type KeyRepository interface {
	Create(ctx context.Context, key *domain.DomainKey) error
	GetBySelector(ctx context.Context, domainID int64, selector string) (*domain.DomainKey, error)
	ListByDomain(ctx context.Context, domainID int64) ([]*domain.DomainKey, error)
	SetSigning(ctx context.Context, id int64, signing bool) error
	Delete(ctx context.Context, id int64) error
}

// KeyUseCase manages the DKIM keys of a domain. Every operation resolves the
// domain through the caller's identity first.
type KeyUseCase interface {
	// List partitions the domain's keys into active (signing) and passive
	// (retained) sets, keyed by selector with the publishable record value.
	List(ctx context.Context, identity *authDomain.Identity, domainName string) (*domain.KeyListing, error)

	// Create mints a fresh keypair under the given selector. A key may sign
	// from the moment it is created; during rotation a domain holds several
	// signing keys at once.
	Create(ctx context.Context, identity *authDomain.Identity, domainName, selector string, signing bool) (*domain.DomainKey, error)

	// SetSigning sets the signing flag on an existing key and returns the
	// flag as stored.
	SetSigning(ctx context.Context, identity *authDomain.Identity, domainName, selector string, signing bool) (bool, error)

	// Delete removes a key and reports whether it was signing at the time,
	// for audit display.
	Delete(ctx context.Context, identity *authDomain.Identity, domainName, selector string) (bool, error)
}
