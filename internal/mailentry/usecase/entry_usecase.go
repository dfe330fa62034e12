package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/database"
	apperrors "github.com/allisson/mailadmin/internal/errors"
	maildomainDomain "github.com/allisson/mailadmin/internal/maildomain/domain"
	maildomainUsecase "github.com/allisson/mailadmin/internal/maildomain/usecase"
	"github.com/allisson/mailadmin/internal/mailentry/domain"
	"github.com/allisson/mailadmin/internal/mailentry/service"
	appvalidation "github.com/allisson/mailadmin/internal/validation"
)

// entryUseCase implements EntryUseCase.
type entryUseCase struct {
	txManager database.TxManager
	entryRepo EntryRepository
	domainUC  maildomainUsecase.DomainUseCase
	encoder   service.CredentialEncoder
}

// validate checks the creation input.
func (i *CreateEntryInput) validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Name, validation.Required, appvalidation.LocalPart),
		validation.Field(&i.Kind, validation.Required),
	)
}

// edit converts the update input into the single edit it encodes.
func (i *UpdateEntryInput) edit() (domain.Edit, error) {
	var edits []domain.Edit
	if i.Secret != nil {
		edits = append(edits, domain.SetSecret{Secret: *i.Secret})
	}
	if i.Expansion != nil {
		edits = append(edits, domain.SetExpansion{Value: *i.Expansion})
	}
	if i.AddMember != nil {
		edits = append(edits, domain.AddMember{Member: *i.AddMember})
	}
	if i.RemoveMember != nil {
		edits = append(edits, domain.RemoveMember{Member: *i.RemoveMember})
	}
	if i.Reason != nil {
		edits = append(edits, domain.SetReason{Reason: *i.Reason})
	}

	if len(edits) != 1 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "exactly one entry field must be set")
	}
	return edits[0], nil
}

// resolveDomain maps the domain name to its record, enforcing access through
// the domain use case.
func (e *entryUseCase) resolveDomain(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName string,
) (*maildomainDomain.MailDomain, error) {
	return e.domainUC.Get(ctx, identity, domainName)
}

// List returns the entries of a domain.
func (e *entryUseCase) List(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName string,
) ([]*domain.MailEntry, error) {
	mailDomain, err := e.resolveDomain(ctx, identity, domainName)
	if err != nil {
		return nil, err
	}

	return e.entryRepo.ListByDomain(ctx, mailDomain.ID)
}

// Get returns one entry. A missing entry is reported with its full address.
func (e *entryUseCase) Get(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName, entryName string,
) (*domain.MailEntry, error) {
	mailDomain, err := e.resolveDomain(ctx, identity, domainName)
	if err != nil {
		return nil, err
	}

	entry, err := e.entryRepo.GetByName(ctx, mailDomain.ID, entryName)
	if err != nil {
		if apperrors.Is(err, domain.ErrEntryNotFound) {
			return nil, &maildomainDomain.NotFoundError{Subject: domain.FullName(entryName, domainName)}
		}
		return nil, err
	}

	return entry, nil
}

// Create adds a new entry of the requested kind. Raw secrets are encoded
// before storage; expansions are canonicalized.
func (e *entryUseCase) Create(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName string,
	input *CreateEntryInput,
) (*domain.MailEntry, error) {
	if err := input.validate(); err != nil {
		return nil, appvalidation.WrapValidationError(err)
	}

	kind := domain.Kind(input.Kind)
	if !kind.Valid() {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "unknown entry kind: "+input.Kind)
	}

	mailDomain, err := e.resolveDomain(ctx, identity, domainName)
	if err != nil {
		return nil, err
	}

	var entry *domain.MailEntry
	switch kind {
	case domain.KindLogin, domain.KindAccount:
		encoded, err := e.encoder.Encode(input.Secret)
		if err != nil {
			return nil, err
		}
		if kind == domain.KindLogin {
			entry = domain.NewLogin(mailDomain.ID, input.Name, encoded)
		} else {
			entry = domain.NewAccount(mailDomain.ID, input.Name, encoded)
		}
	case domain.KindAlias:
		entry, err = domain.NewAlias(mailDomain.ID, input.Name, input.Expansion)
	case domain.KindList:
		entry, err = domain.NewList(mailDomain.ID, input.Name, input.Expansion)
	case domain.KindBouncer:
		entry = domain.NewBouncer(mailDomain.ID, input.Name, input.Reason)
	case domain.KindBlackhole:
		entry = domain.NewBlackhole(mailDomain.ID, input.Name, input.Reason)
	}
	if err != nil {
		return nil, err
	}

	if err := e.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Update applies one edit to an entry. The read-modify-write runs inside a
// transaction so concurrent edits of the same expansion cannot lose members.
func (e *entryUseCase) Update(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName, entryName string,
	input *UpdateEntryInput,
) (*domain.MailEntry, error) {
	edit, err := input.edit()
	if err != nil {
		return nil, err
	}

	// Secrets are encoded outside the transaction; hashing is slow.
	if setSecret, ok := edit.(domain.SetSecret); ok {
		encoded, err := e.encoder.Encode(setSecret.Secret)
		if err != nil {
			return nil, err
		}
		edit = domain.SetSecret{Secret: encoded}
	}

	mailDomain, err := e.resolveDomain(ctx, identity, domainName)
	if err != nil {
		return nil, err
	}
	fullName := domain.FullName(entryName, domainName)

	var entry *domain.MailEntry
	err = e.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = e.entryRepo.GetByName(ctx, mailDomain.ID, entryName)
		if err != nil {
			if apperrors.Is(err, domain.ErrEntryNotFound) {
				return &maildomainDomain.NotFoundError{Subject: fullName}
			}
			return err
		}

		if err := entry.Apply(edit, fullName); err != nil {
			return err
		}

		return e.entryRepo.Update(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Delete removes an entry. A missing entry is reported with its full address.
func (e *entryUseCase) Delete(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName, entryName string,
) error {
	mailDomain, err := e.resolveDomain(ctx, identity, domainName)
	if err != nil {
		return err
	}

	entry, err := e.entryRepo.GetByName(ctx, mailDomain.ID, entryName)
	if err != nil {
		if apperrors.Is(err, domain.ErrEntryNotFound) {
			return &maildomainDomain.NotFoundError{Subject: domain.FullName(entryName, domainName)}
		}
		return err
	}

	return e.entryRepo.Delete(ctx, entry.ID)
}

// NewEntryUseCase creates a new EntryUseCase with the provided dependencies.
func NewEntryUseCase(
	txManager database.TxManager,
	entryRepo EntryRepository,
	domainUC maildomainUsecase.DomainUseCase,
	encoder service.CredentialEncoder,
) EntryUseCase {
	return &entryUseCase{
		txManager: txManager,
		entryRepo: entryRepo,
		domainUC:  domainUC,
		encoder:   encoder,
	}
}
