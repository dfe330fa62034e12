// Package service provides mail-entry related services for credential
// encoding. Secrets are hashed with Argon2id before they ever reach the
// store; pre-tagged values pass through untouched.
package service

// CredentialEncoder prepares a login secret for storage.
type CredentialEncoder interface {
	// Encode returns the storable form of a raw secret. Values already
	// carrying the scheme tag are returned unchanged.
	Encode(rawSecret string) (string, error)
	// Compare performs a constant-time comparison between a raw secret and
	// its stored form.
	Compare(rawSecret string, encodedSecret string) bool
}
