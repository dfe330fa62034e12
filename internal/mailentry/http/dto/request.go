// Package dto provides data transfer objects for mail entry HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/mailadmin/internal/mailentry/usecase"
	appvalidation "github.com/allisson/mailadmin/internal/validation"
)

// CreateEntryRequest contains the parameters for creating a mail entry. The
// payload field that must be set depends on the kind: secret for login and
// account, expansion for alias and list, reason for bouncer and blackhole.
type CreateEntryRequest struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Secret    string `json:"secret"`
	Expansion string `json:"expansion"`
	Reason    string `json:"reason"`
}

// Validate checks if the create entry request is valid. Kind-dependent
// payload legality is the entry model's job; only shape is checked here.
func (r *CreateEntryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, appvalidation.LocalPart),
		validation.Field(&r.Kind, validation.Required),
	)
}

// ToInput converts the request to the use case input.
func (r *CreateEntryRequest) ToInput() *usecase.CreateEntryInput {
	return &usecase.CreateEntryInput{
		Name:      r.Name,
		Kind:      r.Kind,
		Secret:    r.Secret,
		Expansion: r.Expansion,
		Reason:    r.Reason,
	}
}

// UpdateEntryRequest carries exactly one entry edit. Setting more than one
// field, or none, is rejected by the use case.
type UpdateEntryRequest struct {
	Secret       *string `json:"secret"`
	Expansion    *string `json:"expansion"`
	AddMember    *string `json:"add_member"`
	RemoveMember *string `json:"remove_member"`
	Reason       *string `json:"reason"`
}

// Validate checks the shape of the edit. Exactly-one-field and
// kind-dependent legality are the use case's job.
func (r *UpdateEntryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.AddMember, validation.By(optionalNotBlank)),
		validation.Field(&r.RemoveMember, validation.By(optionalNotBlank)),
		validation.Field(&r.Expansion, validation.By(optionalNotBlank)),
	)
}

func optionalNotBlank(value interface{}) error {
	str, ok := value.(*string)
	if !ok || str == nil {
		return nil
	}
	return appvalidation.NotBlank.Validate(*str)
}

// ToInput converts the request to the use case input.
func (r *UpdateEntryRequest) ToInput() *usecase.UpdateEntryInput {
	return &usecase.UpdateEntryInput{
		Secret:       r.Secret,
		Expansion:    r.Expansion,
		AddMember:    r.AddMember,
		RemoveMember: r.RemoveMember,
		Reason:       r.Reason,
	}
}
