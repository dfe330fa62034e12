// Package dto provides data transfer objects for mail domain HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/mailadmin/internal/maildomain/usecase"
	appvalidation "github.com/allisson/mailadmin/internal/validation"
)

// CreateDomainRequest contains the parameters for registering a new domain.
type CreateDomainRequest struct {
	Name          string `json:"name"`
	OwnerUsername string `json:"owner_username"`
}

// Validate checks if the create domain request is valid.
func (r *CreateDomainRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, appvalidation.DomainName),
	)
}

// ToInput converts the request to the use case input.
func (r *CreateDomainRequest) ToInput() *usecase.CreateDomainInput {
	return &usecase.CreateDomainInput{
		Name:          r.Name,
		OwnerUsername: r.OwnerUsername,
	}
}

// UpdateDomainRequest carries the mutable domain settings. Absent fields are
// left untouched; a present-but-empty remote_relay clears the stored relay.
type UpdateDomainRequest struct {
	RemoteRelay   *string `json:"remote_relay"`
	SenderVerify  *bool   `json:"sender_verify"`
	GreyListing   *bool   `json:"grey_listing"`
	VirusCheck    *bool   `json:"virus_check"`
	SpamThreshold *int    `json:"spam_threshold"`
	OwnerUsername *string `json:"owner_username"`
}

// Validate checks if the update domain request is valid.
func (r *UpdateDomainRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.SpamThreshold, validation.Min(0)),
	)
}

// ToInput converts the request to the use case input.
func (r *UpdateDomainRequest) ToInput() *usecase.UpdateDomainInput {
	return &usecase.UpdateDomainInput{
		RemoteRelay:   r.RemoteRelay,
		SenderVerify:  r.SenderVerify,
		GreyListing:   r.GreyListing,
		VirusCheck:    r.VirusCheck,
		SpamThreshold: r.SpamThreshold,
		OwnerUsername: r.OwnerUsername,
	}
}
