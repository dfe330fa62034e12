// Package usecase implements business logic orchestration for mail entries.
package usecase

import (
	"context"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/mailentry/domain"
)

// EntryRepository defines persistence operations for mail entries.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.MailEntry) error
	GetByName(ctx context.Context, domainID int64, name string) (*domain.MailEntry, error)
	ListByDomain(ctx context.Context, domainID int64) ([]*domain.MailEntry, error)
	Update(ctx context.Context, entry *domain.MailEntry) error
	Delete(ctx context.Context, id int64) error
}

// CreateEntryInput carries the fields for entry creation. Which payload field
// is required depends on the kind: secret for login/account, expansion for
// alias/list, reason for bouncer/blackhole.
type CreateEntryInput struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Secret    string `json:"secret"`
	Expansion string `json:"expansion"`
	Reason    string `json:"reason"`
}

// UpdateEntryInput carries exactly one entry edit. Setting more than one
// field, or none, is rejected.
type UpdateEntryInput struct {
	Secret       *string `json:"secret"`
	Expansion    *string `json:"expansion"`
	AddMember    *string `json:"add_member"`
	RemoveMember *string `json:"remove_member"`
	Reason       *string `json:"reason"`
}

// EntryUseCase manages the mail entries of a domain. Every operation resolves
// the domain through the caller's identity first, so an entry is only ever
// reachable by someone allowed to administer its domain.
type EntryUseCase interface {
	List(ctx context.Context, identity *authDomain.Identity, domainName string) ([]*domain.MailEntry, error)
	Get(ctx context.Context, identity *authDomain.Identity, domainName, entryName string) (*domain.MailEntry, error)
	Create(ctx context.Context, identity *authDomain.Identity, domainName string, input *CreateEntryInput) (*domain.MailEntry, error)
	Update(ctx context.Context, identity *authDomain.Identity, domainName, entryName string, input *UpdateEntryInput) (*domain.MailEntry, error)
	Delete(ctx context.Context, identity *authDomain.Identity, domainName, entryName string) error
}
