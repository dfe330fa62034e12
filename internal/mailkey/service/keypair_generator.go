package service

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"

	apperrors "github.com/allisson/mailadmin/internal/errors"
)

// rsaKeyBits is the DKIM keypair size. 2048 is the practical ceiling for DNS
// TXT publication.
const rsaKeyBits = 2048

// rsaKeypairGenerator implements KeypairGenerator with RSA keys.
type rsaKeypairGenerator struct{}

// Generate mints a fresh RSA-2048 keypair. The private key is PKCS#1 PEM so
// the signing milter can load it directly; the public key is base64 of its
// SubjectPublicKeyInfo DER, the form embedded in the DNS record.
func (g *rsaKeypairGenerator) Generate() (string, string, error) {
	key, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate RSA keypair")
	}

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", "", apperrors.Wrap(err, "failed to encode public key")
	}

	return string(privatePEM), base64.StdEncoding.EncodeToString(publicDER), nil
}

// NewKeypairGenerator creates a KeypairGenerator producing RSA-2048 keypairs.
func NewKeypairGenerator() KeypairGenerator {
	return &rsaKeypairGenerator{}
}
