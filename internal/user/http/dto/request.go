// Package dto provides data transfer objects for user HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/mailadmin/internal/user/usecase"
	appvalidation "github.com/allisson/mailadmin/internal/validation"
)

// CreateUserRequest contains the parameters for creating an administrative
// account.
type CreateUserRequest struct {
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Validate checks if the create user request is valid.
func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			validation.Length(1, 128),
			appvalidation.NotBlank,
			appvalidation.NoWhitespace,
		),
	)
}

// ToInput converts the request to the use case input.
func (r *CreateUserRequest) ToInput() *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		Username:    r.Username,
		IsSuperuser: r.IsSuperuser,
	}
}
