// Package dto provides data transfer objects for token HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"

	appvalidation "github.com/allisson/mailadmin/internal/validation"
)

// CreateTokenRequest contains the parameters for issuing a new bearer token.
type CreateTokenRequest struct {
	Label string `json:"label"`
}

// Validate checks if the create token request is valid.
func (r *CreateTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Label,
			validation.Required,
			appvalidation.NotBlank,
			validation.Length(1, 128),
		),
	)
}

// RevokeTokenRequest contains the token value to revoke.
type RevokeTokenRequest struct {
	Token string `json:"token"`
}

// Validate checks if the revoke token request is valid.
func (r *RevokeTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token, validation.Required, appvalidation.NotBlank),
	)
}
