// Package domain contains the DKIM signing key model for mail domains.
package domain

import (
	"fmt"

	"github.com/allisson/mailadmin/internal/errors"
)

// DomainKey is one DKIM keypair attached to a mail domain. Several keys per
// domain may carry the signing flag at once, which is what makes rotation
// windows possible: the new key signs while the old one is still published
// for verification. A key with signing unset is retained but inactive.
type DomainKey struct {
	ID       int64
	DomainID int64
	Selector string
	// PrivateKey is the PEM-encoded RSA private key.
	PrivateKey string
	// PublicKey is the base64 of the DER-encoded public key, as published in
	// the DNS record.
	PublicKey string
	Signing   bool
}

// RenderPublicRecord returns the value of the DNS TXT record that publishes
// this key under "{selector}._domainkey.{domain}".
func (k *DomainKey) RenderPublicRecord() string {
	return fmt.Sprintf("v=DKIM1; k=rsa; p=%s", k.PublicKey)
}

// KeyListing partitions a domain's keys by their signing flag. Both maps go
// from selector to the publishable DNS record value.
type KeyListing struct {
	Active  map[string]string `json:"active"`
	Passive map[string]string `json:"passive"`
}

// ErrKeyNotFound indicates the requested domain key does not exist.
var ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "domain key not found")

// KeyNotFoundError carries the selector of a failed key lookup.
type KeyNotFoundError struct {
	Selector string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("entry not found: %s", e.Selector)
}

func (e *KeyNotFoundError) Unwrap() error { return errors.ErrNotFound }

// SelectorInUseError indicates a key with the same selector already exists
// for the domain.
type SelectorInUseError struct {
	Selector string
}

func (e *SelectorInUseError) Error() string {
	return fmt.Sprintf("selector already in use: %s", e.Selector)
}

func (e *SelectorInUseError) Unwrap() error {
	return errors.ErrConflict
}
