package usecase

import (
	"context"
	"errors"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	authService "github.com/allisson/mailadmin/internal/auth/service"
)

// tokenUseCase implements TokenUseCase for managing bearer tokens.
type tokenUseCase struct {
	tokenRepo    TokenRepository
	userRepo     UserRepository
	tokenService authService.TokenService
}

// Resolve maps a presented bearer token to an Identity.
//
// Failure modes:
//   - ErrNoToken when no token was supplied at all
//   - BadAuthTokenError when the token matches no stored row
//
// The lookup is read-only; resolution happens before any domain-scoped
// operation runs and the resulting Identity is passed along explicitly.
func (t *tokenUseCase) Resolve(ctx context.Context, presentedToken string) (*authDomain.Identity, error) {
	if presentedToken == "" {
		return nil, authDomain.ErrNoToken
	}

	token, err := t.tokenRepo.GetByToken(ctx, presentedToken)
	if err != nil {
		if errors.Is(err, authDomain.ErrTokenNotFound) {
			return nil, &authDomain.BadAuthTokenError{Token: presentedToken}
		}
		return nil, err
	}

	// The foreign key guarantees the owning user exists; any failure here is
	// a store failure and propagates as-is.
	user, err := t.userRepo.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}

	return &authDomain.Identity{
		Token:       presentedToken,
		UserID:      user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
	}, nil
}

// List returns all tokens owned by the calling identity.
func (t *tokenUseCase) List(
	ctx context.Context,
	identity *authDomain.Identity,
) ([]*authDomain.AuthToken, error) {
	return t.tokenRepo.ListByUser(ctx, identity.UserID)
}

// Create issues a new token for the caller. The token value is generated here
// and returned to the caller; it is stored as issued so the owner can list it
// again later.
func (t *tokenUseCase) Create(
	ctx context.Context,
	identity *authDomain.Identity,
	label string,
) (*authDomain.AuthToken, error) {
	value, err := t.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}

	token := &authDomain.AuthToken{
		UserID: identity.UserID,
		Token:  value,
		Label:  label,
	}

	if err := t.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}

// Revoke removes one of the caller's tokens and returns its label.
//
// Failure modes:
//   - TokenInUseError when the target is the token authenticating this request
//   - BadTokenError when the target doesn't exist or belongs to another user;
//     both cases look the same to the caller so token values can't be probed
func (t *tokenUseCase) Revoke(
	ctx context.Context,
	identity *authDomain.Identity,
	token string,
) (string, error) {
	if identity.Token == token {
		return "", &authDomain.TokenInUseError{Token: token}
	}

	stored, err := t.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, authDomain.ErrTokenNotFound) {
			return "", &authDomain.BadTokenError{Token: token}
		}
		return "", err
	}

	if stored.UserID != identity.UserID {
		return "", &authDomain.BadTokenError{Token: token}
	}

	if err := t.tokenRepo.Delete(ctx, stored.ID); err != nil {
		return "", err
	}

	return stored.Label, nil
}

// NewTokenUseCase creates a new TokenUseCase with the provided dependencies.
func NewTokenUseCase(
	tokenRepo TokenRepository,
	userRepo UserRepository,
	tokenService authService.TokenService,
) TokenUseCase {
	return &tokenUseCase{
		tokenRepo:    tokenRepo,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}
