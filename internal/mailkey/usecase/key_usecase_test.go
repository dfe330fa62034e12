package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	apperrors "github.com/allisson/mailadmin/internal/errors"
	maildomainDomain "github.com/allisson/mailadmin/internal/maildomain/domain"
	maildomainUsecase "github.com/allisson/mailadmin/internal/maildomain/usecase"
	"github.com/allisson/mailadmin/internal/mailkey/domain"
)

// mockKeyRepository is a mock implementation of KeyRepository for testing.
type mockKeyRepository struct {
	mock.Mock
}

func (m *mockKeyRepository) Create(ctx context.Context, key *domain.DomainKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockKeyRepository) GetBySelector(ctx context.Context, domainID int64, selector string) (*domain.DomainKey, error) {
	args := m.Called(ctx, domainID, selector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DomainKey), args.Error(1)
}

func (m *mockKeyRepository) ListByDomain(ctx context.Context, domainID int64) ([]*domain.DomainKey, error) {
	args := m.Called(ctx, domainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DomainKey), args.Error(1)
}

func (m *mockKeyRepository) SetSigning(ctx context.Context, id int64, signing bool) error {
	args := m.Called(ctx, id, signing)
	return args.Error(0)
}

func (m *mockKeyRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockDomainUseCase is a mock implementation of the domain use case for testing.
type mockDomainUseCase struct {
	mock.Mock
}

func (m *mockDomainUseCase) List(ctx context.Context, identity *authDomain.Identity) ([]*maildomainDomain.MailDomain, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*maildomainDomain.MailDomain), args.Error(1)
}

func (m *mockDomainUseCase) Get(ctx context.Context, identity *authDomain.Identity, name string) (*maildomainDomain.MailDomain, error) {
	args := m.Called(ctx, identity, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maildomainDomain.MailDomain), args.Error(1)
}

func (m *mockDomainUseCase) Create(ctx context.Context, identity *authDomain.Identity, input *maildomainUsecase.CreateDomainInput) (*maildomainDomain.MailDomain, error) {
	args := m.Called(ctx, identity, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maildomainDomain.MailDomain), args.Error(1)
}

func (m *mockDomainUseCase) Update(ctx context.Context, identity *authDomain.Identity, name string, input *maildomainUsecase.UpdateDomainInput) (*maildomainDomain.MailDomain, error) {
	args := m.Called(ctx, identity, name, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maildomainDomain.MailDomain), args.Error(1)
}

func (m *mockDomainUseCase) ListAllowDeny(ctx context.Context, identity *authDomain.Identity, name string) ([]*maildomainDomain.AllowDenyEntry, error) {
	args := m.Called(ctx, identity, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*maildomainDomain.AllowDenyEntry), args.Error(1)
}

// mockKeypairGenerator is a mock implementation of KeypairGenerator for testing.
type mockKeypairGenerator struct {
	mock.Mock
}

func (m *mockKeypairGenerator) Generate() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

var owner = &authDomain.Identity{UserID: 2, Username: "alice"}

func newKeyUseCaseWithMocks(t *testing.T) (KeyUseCase, *mockKeyRepository, *mockDomainUseCase, *mockKeypairGenerator) {
	t.Helper()
	keyRepo := &mockKeyRepository{}
	domainUC := &mockDomainUseCase{}
	generator := &mockKeypairGenerator{}
	uc := NewKeyUseCase(keyRepo, domainUC, generator)
	return uc, keyRepo, domainUC, generator
}

func exampleDomain() *maildomainDomain.MailDomain {
	return &maildomainDomain.MailDomain{ID: 10, OwnerUserID: 2, Name: "example.com"}
}

func TestKeyUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Signing", func(t *testing.T) {
		uc, keyRepo, domainUC, generator := newKeyUseCaseWithMocks(t)
		domainUC.On("Get", ctx, owner, "example.com").Return(exampleDomain(), nil).Once()
		generator.On("Generate").Return("pem-private", "b64-public", nil).Once()
		keyRepo.On("Create", ctx, mock.MatchedBy(func(key *domain.DomainKey) bool {
			return key.DomainID == 10 &&
				key.Selector == "mail" &&
				key.PrivateKey == "pem-private" &&
				key.PublicKey == "b64-public" &&
				key.Signing
		})).Return(nil).Once()

		key, err := uc.Create(ctx, owner, "example.com", "mail", true)
		require.NoError(t, err)
		assert.Equal(t, "v=DKIM1; k=rsa; p=b64-public", key.RenderPublicRecord())
		assert.True(t, key.Signing)
	})

	t.Run("Success_NotSigning", func(t *testing.T) {
		uc, keyRepo, domainUC, generator := newKeyUseCaseWithMocks(t)
		domainUC.On("Get", ctx, owner, "example.com").Return(exampleDomain(), nil).Once()
		generator.On("Generate").Return("pem", "pub", nil).Once()
		keyRepo.On("Create", ctx, mock.MatchedBy(func(key *domain.DomainKey) bool {
			return !key.Signing
		})).Return(nil).Once()

		key, err := uc.Create(ctx, owner, "example.com", "mail", false)
		require.NoError(t, err)
		assert.False(t, key.Signing)
	})

	t.Run("InvalidSelector", func(t *testing.T) {
		uc, keyRepo, _, _ := newKeyUseCaseWithMocks(t)

		_, err := uc.Create(ctx, owner, "example.com", "bad selector", false)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		keyRepo.AssertNotCalled(t, "Create")
	})

	t.Run("DuplicateSelector", func(t *testing.T) {
		uc, keyRepo, domainUC, generator := newKeyUseCaseWithMocks(t)
		domainUC.On("Get", ctx, owner, "example.com").Return(exampleDomain(), nil).Once()
		generator.On("Generate").Return("pem", "pub", nil).Once()
		keyRepo.On("Create", ctx, mock.Anything).
			Return(&domain.SelectorInUseError{Selector: "mail"}).Once()

		_, err := uc.Create(ctx, owner, "example.com", "mail", false)
		assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	})
}

func TestKeyUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("PartitionsBySigningFlag", func(t *testing.T) {
		uc, keyRepo, domainUC, _ := newKeyUseCaseWithMocks(t)
		domainUC.On("Get", ctx, owner, "example.com").Return(exampleDomain(), nil).Once()
		keyRepo.On("ListByDomain", ctx, int64(10)).Return([]*domain.DomainKey{
			{ID: 1, Selector: "sel1", PublicKey: "AAA", Signing: true},
			{ID: 2, Selector: "sel2", PublicKey: "BBB", Signing: true},
			{ID: 3, Selector: "old", PublicKey: "CCC"},
		}, nil).Once()

		listing, err := uc.List(ctx, owner, "example.com")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"sel1": "v=DKIM1; k=rsa; p=AAA",
			"sel2": "v=DKIM1; k=rsa; p=BBB",
		}, listing.Active)
		assert.Equal(t, map[string]string{
			"old": "v=DKIM1; k=rsa; p=CCC",
		}, listing.Passive)
	})

	t.Run("EmptyDomain", func(t *testing.T) {
		uc, keyRepo, domainUC, _ := newKeyUseCaseWithMocks(t)
		domainUC.On("Get", ctx, owner, "example.com").Return(exampleDomain(), nil).Once()
		keyRepo.On("ListByDomain", ctx, int64(10)).Return([]*domain.DomainKey{}, nil).Once()

		listing, err := uc.List(ctx, owner, "example.com")
		require.NoError(t, err)
		assert.Empty(t, listing.Active)
		assert.Empty(t, listing.Passive)
	})
}

func TestKeyUseCase_SetSigning(t *testing.T) {
	ctx := context.Background()

	t.Run("DemotesToPassive", func(t *testing.T) {
		uc, keyRepo, domainUC, _ := newKeyUseCaseWithMocks(t)
		domainUC.On("Get", ctx, owner, "example.com").Return(exampleDomain(), nil).Once()
		keyRepo.On("GetBySelector", ctx, int64(10), "sel1").
			Return(&domain.DomainKey{ID: 1, Selector: "sel1", Signing: true}, nil).Once()
		keyRepo.On("SetSigning", ctx, int64(1), false).Return(nil).Once()

		signing, err := uc.SetSigning(ctx, owner, "example.com", "sel1", false)
		require.NoError(t, err)
		assert.False(t, signing)
		keyRepo.AssertExpectations(t)
	})

	t.Run("UnknownSelector", func(t *testing.T) {
		uc, keyRepo, domainUC, _ := newKeyUseCaseWithMocks(t)
		domainUC.On("Get", ctx, owner, "example.com").Return(exampleDomain(), nil).Once()
		keyRepo.On("GetBySelector", ctx, int64(10), "ghost").
			Return(nil, domain.ErrKeyNotFound).Once()

		_, err := uc.SetSigning(ctx, owner, "example.com", "ghost", true)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))

		var notFound *domain.KeyNotFoundError
		require.True(t, apperrors.As(err, &notFound))
		assert.Equal(t, "ghost", notFound.Selector)
		keyRepo.AssertNotCalled(t, "SetSigning")
	})
}

// Two keys signing at once, then one demoted: the rotation window closes and
// the demoted key moves from active to passive.
func TestKeyUseCase_RotationWindow(t *testing.T) {
	ctx := context.Background()
	uc, keyRepo, domainUC, _ := newKeyUseCaseWithMocks(t)

	domainUC.On("Get", ctx, owner, "example.com").Return(exampleDomain(), nil)

	keyRepo.On("ListByDomain", ctx, int64(10)).Return([]*domain.DomainKey{
		{ID: 1, Selector: "sel1", PublicKey: "AAA", Signing: true},
		{ID: 2, Selector: "sel2", PublicKey: "BBB", Signing: true},
	}, nil).Once()

	listing, err := uc.List(ctx, owner, "example.com")
	require.NoError(t, err)
	assert.Len(t, listing.Active, 2)
	assert.Empty(t, listing.Passive)

	keyRepo.On("GetBySelector", ctx, int64(10), "sel1").
		Return(&domain.DomainKey{ID: 1, Selector: "sel1", Signing: true}, nil).Once()
	keyRepo.On("SetSigning", ctx, int64(1), false).Return(nil).Once()

	_, err = uc.SetSigning(ctx, owner, "example.com", "sel1", false)
	require.NoError(t, err)

	keyRepo.On("ListByDomain", ctx, int64(10)).Return([]*domain.DomainKey{
		{ID: 1, Selector: "sel1", PublicKey: "AAA"},
		{ID: 2, Selector: "sel2", PublicKey: "BBB", Signing: true},
	}, nil).Once()

	listing, err = uc.List(ctx, owner, "example.com")
	require.NoError(t, err)
	assert.Contains(t, listing.Active, "sel2")
	assert.Contains(t, listing.Passive, "sel1")
}

func TestKeyUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("ReportsWasSigning", func(t *testing.T) {
		uc, keyRepo, domainUC, _ := newKeyUseCaseWithMocks(t)
		domainUC.On("Get", ctx, owner, "example.com").Return(exampleDomain(), nil).Once()
		keyRepo.On("GetBySelector", ctx, int64(10), "mail").
			Return(&domain.DomainKey{ID: 2, Selector: "mail", Signing: true}, nil).Once()
		keyRepo.On("Delete", ctx, int64(2)).Return(nil).Once()

		wasSigning, err := uc.Delete(ctx, owner, "example.com", "mail")
		require.NoError(t, err)
		assert.True(t, wasSigning)
	})

	t.Run("UnknownSelector", func(t *testing.T) {
		uc, keyRepo, domainUC, _ := newKeyUseCaseWithMocks(t)
		domainUC.On("Get", ctx, owner, "example.com").Return(exampleDomain(), nil).Once()
		keyRepo.On("GetBySelector", ctx, int64(10), "ghost").
			Return(nil, domain.ErrKeyNotFound).Once()

		_, err := uc.Delete(ctx, owner, "example.com", "ghost")
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
		keyRepo.AssertNotCalled(t, "Delete")
	})
}
