// Package usecase implements business logic orchestration for user management.
package usecase

import (
	"context"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/user/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// CreateUserInput carries the fields for user creation.
type CreateUserInput struct {
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserUseCase manages administrative accounts. Both operations are superuser
// only.
type UserUseCase interface {
	List(ctx context.Context, identity *authDomain.Identity) ([]*domain.User, error)
	Create(ctx context.Context, identity *authDomain.Identity, input *CreateUserInput) (*domain.User, error)
}
