package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/user/domain"
	appvalidation "github.com/allisson/mailadmin/internal/validation"
)

// userUseCase implements UserUseCase.
type userUseCase struct {
	userRepo UserRepository
}

// validate checks the creation input.
func (i *CreateUserInput) validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Username,
			validation.Required,
			appvalidation.NotBlank,
			appvalidation.NoWhitespace,
			validation.Length(1, 255),
		),
	)
}

// List returns all users. Superuser only.
func (u *userUseCase) List(ctx context.Context, identity *authDomain.Identity) ([]*domain.User, error) {
	if !authDomain.MayListUsers(identity) {
		return nil, &authDomain.PermissionDeniedError{Subject: "users"}
	}

	return u.userRepo.List(ctx)
}

// Create adds a new administrative account. Superuser only.
func (u *userUseCase) Create(
	ctx context.Context,
	identity *authDomain.Identity,
	input *CreateUserInput,
) (*domain.User, error) {
	if !authDomain.MayCreateUser(identity) {
		return nil, &authDomain.PermissionDeniedError{Subject: "users"}
	}

	if err := input.validate(); err != nil {
		return nil, appvalidation.WrapValidationError(err)
	}

	user := &domain.User{
		Username:    input.Username,
		IsSuperuser: input.IsSuperuser,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// NewUserUseCase creates a new UserUseCase with the provided dependencies.
func NewUserUseCase(userRepo UserRepository) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
	}
}
