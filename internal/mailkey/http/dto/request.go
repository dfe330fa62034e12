// Package dto provides data transfer objects for domain key HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"

	appvalidation "github.com/allisson/mailadmin/internal/validation"
)

// CreateKeyRequest contains the parameters for minting a DKIM keypair.
type CreateKeyRequest struct {
	Selector string `json:"selector"`
	Signing  bool   `json:"signing"`
}

// Validate checks if the create key request is valid.
func (r *CreateKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Selector, validation.Required, validation.Length(1, 63), appvalidation.Selector),
	)
}

// SetSigningRequest flips the signing flag on an existing key.
type SetSigningRequest struct {
	Signing *bool `json:"signing"`
}

// Validate checks if the set signing request is valid.
func (r *SetSigningRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Signing, validation.NotNil),
	)
}
