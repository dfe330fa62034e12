package dto

import (
	"github.com/allisson/mailadmin/internal/mailkey/domain"
)

// KeyResponse is one domain key. The private key never leaves the server;
// record is the value to publish at "{selector}._domainkey.{domain}".
type KeyResponse struct {
	Selector string `json:"selector"`
	Signing  bool   `json:"signing"`
	Record   string `json:"record"`
}

// ListKeysResponse partitions the domain's keys by their signing flag, each
// map going from selector to the publishable record value.
type ListKeysResponse struct {
	Active  map[string]string `json:"active"`
	Passive map[string]string `json:"passive"`
}

// SetSigningResponse reports the signing flag as stored.
type SetSigningResponse struct {
	Selector string `json:"selector"`
	Signing  bool   `json:"signing"`
}

// DeleteKeyResponse reports the removed selector and whether the key was
// signing at the time.
type DeleteKeyResponse struct {
	Deleted    string `json:"deleted"`
	WasSigning bool   `json:"was_signing"`
}

// MapKeyToResponse converts a domain key to its response form.
func MapKeyToResponse(key *domain.DomainKey) KeyResponse {
	return KeyResponse{
		Selector: key.Selector,
		Signing:  key.Signing,
		Record:   key.RenderPublicRecord(),
	}
}

// MapListingToResponse converts a key listing to the list response.
func MapListingToResponse(listing *domain.KeyListing) ListKeysResponse {
	return ListKeysResponse{
		Active:  listing.Active,
		Passive: listing.Passive,
	}
}
