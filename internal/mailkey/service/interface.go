// Package service provides DKIM keypair generation for domain keys.
package service

// KeypairGenerator mints RSA keypairs in the formats the mail stack and DNS
// publication expect.
type KeypairGenerator interface {
	// Generate returns a new keypair: the private key as PEM text and the
	// public key as base64 of its DER encoding.
	Generate() (privateKey string, publicKey string, err error)
}
