package service

import (
	"strings"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/mailadmin/internal/errors"
)

// SchemeTag marks an already-encoded secret. The mail stack reads this prefix
// to pick the verification scheme, so stored secrets always carry it.
const SchemeTag = "{ARGON2ID}"

// credentialEncoder implements CredentialEncoder using Argon2id hashing.
type credentialEncoder struct {
	hasher *pwdhash.PasswordHasher
}

// Encode hashes a raw secret and prepends the scheme tag. A value that
// already starts with the tag is assumed pre-encoded and passes through
// unchanged, which lets operators import secrets hashed elsewhere.
func (e *credentialEncoder) Encode(rawSecret string) (string, error) {
	if strings.HasPrefix(rawSecret, SchemeTag) {
		return rawSecret, nil
	}

	hashed, err := e.hasher.Hash([]byte(rawSecret))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash secret")
	}
	return SchemeTag + hashed, nil
}

// Compare performs a constant-time comparison between a raw secret and its
// stored form.
func (e *credentialEncoder) Compare(rawSecret string, encodedSecret string) bool {
	hashed := strings.TrimPrefix(encodedSecret, SchemeTag)
	ok, err := e.hasher.Verify([]byte(rawSecret), hashed)
	if err != nil {
		return false
	}
	return ok
}

// NewCredentialEncoder creates a CredentialEncoder using Argon2id hashing.
// Uses the Moderate policy for a balance between security and performance.
func NewCredentialEncoder() CredentialEncoder {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &credentialEncoder{
		hasher: hasher,
	}
}
