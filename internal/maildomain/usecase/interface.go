// Package usecase implements business logic orchestration for mail domains.
package usecase

import (
	"context"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/maildomain/domain"
	userDomain "github.com/allisson/mailadmin/internal/user/domain"
)

// DomainRepository defines persistence operations for mail domains.
type DomainRepository interface {
	Create(ctx context.Context, mailDomain *domain.MailDomain) error
	GetByName(ctx context.Context, name string) (*domain.MailDomain, error)
	ListByOwner(ctx context.Context, ownerUserID int64) ([]*domain.MailDomain, error)
	List(ctx context.Context) ([]*domain.MailDomain, error)
	Update(ctx context.Context, mailDomain *domain.MailDomain) error
}

// AllowDenyRepository reads the per-domain sender allow/deny list.
type AllowDenyRepository interface {
	ListByDomain(ctx context.Context, domainID int64) ([]*domain.AllowDenyEntry, error)
}

// UserRepository defines the user lookups domain management needs.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
}

// CreateDomainInput carries the fields for domain creation. Owner defaults to
// the caller when empty.
type CreateDomainInput struct {
	Name          string `json:"name"`
	OwnerUsername string `json:"owner_username"`
}

// UpdateDomainInput carries the mutable domain settings. Nil fields are left
// untouched; a set-but-empty RemoteRelay clears the stored relay.
type UpdateDomainInput struct {
	RemoteRelay   *string `json:"remote_relay"`
	SenderVerify  *bool   `json:"sender_verify"`
	GreyListing   *bool   `json:"grey_listing"`
	VirusCheck    *bool   `json:"virus_check"`
	SpamThreshold *int    `json:"spam_threshold"`
	OwnerUsername *string `json:"owner_username"`
}

// DomainUseCase manages mail domains and their settings.
type DomainUseCase interface {
	// List returns the caller's domains; a superuser sees every domain.
	List(ctx context.Context, identity *authDomain.Identity) ([]*domain.MailDomain, error)

	// Get returns one domain the caller may administer.
	Get(ctx context.Context, identity *authDomain.Identity, name string) (*domain.MailDomain, error)

	// Create registers a new domain with default settings. Superuser only.
	Create(ctx context.Context, identity *authDomain.Identity, input *CreateDomainInput) (*domain.MailDomain, error)

	// Update changes delivery settings; owner reassignment is superuser only.
	Update(ctx context.Context, identity *authDomain.Identity, name string, input *UpdateDomainInput) (*domain.MailDomain, error)

	// ListAllowDeny returns the domain's sender allow/deny rules.
	ListAllowDeny(ctx context.Context, identity *authDomain.Identity, name string) ([]*domain.AllowDenyEntry, error)
}
