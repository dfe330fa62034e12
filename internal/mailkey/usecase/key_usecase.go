package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	apperrors "github.com/allisson/mailadmin/internal/errors"
	maildomainUsecase "github.com/allisson/mailadmin/internal/maildomain/usecase"
	"github.com/allisson/mailadmin/internal/mailkey/domain"
	"github.com/allisson/mailadmin/internal/mailkey/service"
	appvalidation "github.com/allisson/mailadmin/internal/validation"
)

// keyUseCase implements KeyUseCase.
type keyUseCase struct {
	keyRepo   KeyRepository
	domainUC  maildomainUsecase.DomainUseCase
	generator service.KeypairGenerator
}

func validateSelector(selector string) error {
	return appvalidation.WrapValidationError(
		validation.Validate(selector, validation.Required, appvalidation.Selector),
	)
}

// getKey resolves a selector to its key, reporting the selector as the
// subject when the key is missing.
func (k *keyUseCase) getKey(ctx context.Context, domainID int64, selector string) (*domain.DomainKey, error) {
	key, err := k.keyRepo.GetBySelector(ctx, domainID, selector)
	if err != nil {
		if apperrors.Is(err, domain.ErrKeyNotFound) {
			return nil, &domain.KeyNotFoundError{Selector: selector}
		}
		return nil, err
	}
	return key, nil
}

// List partitions the domain's keys by their signing flag.
func (k *keyUseCase) List(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName string,
) (*domain.KeyListing, error) {
	mailDomain, err := k.domainUC.Get(ctx, identity, domainName)
	if err != nil {
		return nil, err
	}

	keys, err := k.keyRepo.ListByDomain(ctx, mailDomain.ID)
	if err != nil {
		return nil, err
	}

	listing := &domain.KeyListing{
		Active:  map[string]string{},
		Passive: map[string]string{},
	}
	for _, key := range keys {
		if key.Signing {
			listing.Active[key.Selector] = key.RenderPublicRecord()
		} else {
			listing.Passive[key.Selector] = key.RenderPublicRecord()
		}
	}
	return listing, nil
}

// Create mints a fresh keypair under the given selector. A domain may hold
// several signing keys at once, so a new key can sign from the start; key
// generation is CPU-bound and runs synchronously.
func (k *keyUseCase) Create(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName, selector string,
	signing bool,
) (*domain.DomainKey, error) {
	if err := validateSelector(selector); err != nil {
		return nil, err
	}

	mailDomain, err := k.domainUC.Get(ctx, identity, domainName)
	if err != nil {
		return nil, err
	}

	privateKey, publicKey, err := k.generator.Generate()
	if err != nil {
		return nil, err
	}

	key := &domain.DomainKey{
		DomainID:   mailDomain.ID,
		Selector:   selector,
		PrivateKey: privateKey,
		PublicKey:  publicKey,
		Signing:    signing,
	}
	if err := k.keyRepo.Create(ctx, key); err != nil {
		return nil, err
	}

	return key, nil
}

// SetSigning sets the signing flag on an existing key and returns it as
// stored.
func (k *keyUseCase) SetSigning(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName, selector string,
	signing bool,
) (bool, error) {
	mailDomain, err := k.domainUC.Get(ctx, identity, domainName)
	if err != nil {
		return false, err
	}

	key, err := k.getKey(ctx, mailDomain.ID, selector)
	if err != nil {
		return false, err
	}

	if err := k.keyRepo.SetSigning(ctx, key.ID, signing); err != nil {
		return false, err
	}

	return signing, nil
}

// Delete removes a key and reports whether it was signing at the time.
func (k *keyUseCase) Delete(
	ctx context.Context,
	identity *authDomain.Identity,
	domainName, selector string,
) (bool, error) {
	mailDomain, err := k.domainUC.Get(ctx, identity, domainName)
	if err != nil {
		return false, err
	}

	key, err := k.getKey(ctx, mailDomain.ID, selector)
	if err != nil {
		return false, err
	}

	if err := k.keyRepo.Delete(ctx, key.ID); err != nil {
		return false, err
	}

	return key.Signing, nil
}

// NewKeyUseCase creates a new KeyUseCase with the provided dependencies.
func NewKeyUseCase(
	keyRepo KeyRepository,
	domainUC maildomainUsecase.DomainUseCase,
	generator service.KeypairGenerator,
) KeyUseCase {
	return &keyUseCase{
		keyRepo:   keyRepo,
		domainUC:  domainUC,
		generator: generator,
	}
}
