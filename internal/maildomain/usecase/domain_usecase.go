package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/maildomain/domain"
	appvalidation "github.com/allisson/mailadmin/internal/validation"
)

// domainUseCase implements DomainUseCase.
type domainUseCase struct {
	domainRepo    DomainRepository
	allowDenyRepo AllowDenyRepository
	userRepo      UserRepository
}

// validate checks the creation input.
func (i *CreateDomainInput) validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Name, validation.Required, appvalidation.DomainName),
	)
}

// validate checks the update input.
func (i *UpdateDomainInput) validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.SpamThreshold, validation.Min(0)),
	)
}

// authorize loads a domain and checks the caller may administer it. A domain
// the caller may not touch surfaces as permission denied, with the not-found
// case kept distinct: probing names is harmless since domains are public DNS.
func (d *domainUseCase) authorize(
	ctx context.Context,
	identity *authDomain.Identity,
	name string,
) (*domain.MailDomain, error) {
	mailDomain, err := d.domainRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if !authDomain.MayAccessDomain(identity, mailDomain.OwnerUserID) {
		return nil, &authDomain.PermissionDeniedError{Subject: name}
	}

	return mailDomain, nil
}

// List returns the caller's domains; a superuser sees every domain.
func (d *domainUseCase) List(
	ctx context.Context,
	identity *authDomain.Identity,
) ([]*domain.MailDomain, error) {
	if identity.IsSuperuser {
		return d.domainRepo.List(ctx)
	}
	return d.domainRepo.ListByOwner(ctx, identity.UserID)
}

// Get returns one domain the caller may administer.
func (d *domainUseCase) Get(
	ctx context.Context,
	identity *authDomain.Identity,
	name string,
) (*domain.MailDomain, error) {
	return d.authorize(ctx, identity, name)
}

// Create registers a new domain with default settings. Superuser only.
func (d *domainUseCase) Create(
	ctx context.Context,
	identity *authDomain.Identity,
	input *CreateDomainInput,
) (*domain.MailDomain, error) {
	if !authDomain.MayCreateDomain(identity) {
		return nil, &authDomain.PermissionDeniedError{Subject: input.Name}
	}

	if err := input.validate(); err != nil {
		return nil, appvalidation.WrapValidationError(err)
	}

	ownerID := identity.UserID
	if input.OwnerUsername != "" {
		owner, err := d.userRepo.GetByUsername(ctx, input.OwnerUsername)
		if err != nil {
			return nil, err
		}
		ownerID = owner.ID
	}

	mailDomain := &domain.MailDomain{
		OwnerUserID:   ownerID,
		Name:          input.Name,
		SenderVerify:  domain.DefaultSenderVerify,
		GreyListing:   domain.DefaultGreyListing,
		VirusCheck:    domain.DefaultVirusCheck,
		SpamThreshold: domain.DefaultSpamThreshold,
	}
	if err := d.domainRepo.Create(ctx, mailDomain); err != nil {
		return nil, err
	}

	return mailDomain, nil
}

// Update changes delivery settings; owner reassignment is superuser only.
func (d *domainUseCase) Update(
	ctx context.Context,
	identity *authDomain.Identity,
	name string,
	input *UpdateDomainInput,
) (*domain.MailDomain, error) {
	if err := input.validate(); err != nil {
		return nil, appvalidation.WrapValidationError(err)
	}

	mailDomain, err := d.authorize(ctx, identity, name)
	if err != nil {
		return nil, err
	}

	if input.RemoteRelay != nil {
		// An empty relay clears the stored value.
		if *input.RemoteRelay == "" {
			mailDomain.RemoteRelay = nil
		} else {
			mailDomain.RemoteRelay = input.RemoteRelay
		}
	}
	if input.SenderVerify != nil {
		mailDomain.SenderVerify = *input.SenderVerify
	}
	if input.GreyListing != nil {
		mailDomain.GreyListing = *input.GreyListing
	}
	if input.VirusCheck != nil {
		mailDomain.VirusCheck = *input.VirusCheck
	}
	if input.SpamThreshold != nil {
		mailDomain.SpamThreshold = *input.SpamThreshold
	}
	if input.OwnerUsername != nil {
		if !authDomain.MayReassignOwner(identity) {
			return nil, &authDomain.PermissionDeniedError{Subject: name}
		}
		owner, err := d.userRepo.GetByUsername(ctx, *input.OwnerUsername)
		if err != nil {
			return nil, err
		}
		mailDomain.OwnerUserID = owner.ID
	}

	if err := d.domainRepo.Update(ctx, mailDomain); err != nil {
		return nil, err
	}

	return mailDomain, nil
}

// ListAllowDeny returns the domain's sender allow/deny rules.
func (d *domainUseCase) ListAllowDeny(
	ctx context.Context,
	identity *authDomain.Identity,
	name string,
) ([]*domain.AllowDenyEntry, error) {
	mailDomain, err := d.authorize(ctx, identity, name)
	if err != nil {
		return nil, err
	}

	return d.allowDenyRepo.ListByDomain(ctx, mailDomain.ID)
}

// NewDomainUseCase creates a new DomainUseCase with the provided dependencies.
func NewDomainUseCase(
	domainRepo DomainRepository,
	allowDenyRepo AllowDenyRepository,
	userRepo UserRepository,
) DomainUseCase {
	return &domainUseCase{
		domainRepo:    domainRepo,
		allowDenyRepo: allowDenyRepo,
		userRepo:      userRepo,
	}
}
