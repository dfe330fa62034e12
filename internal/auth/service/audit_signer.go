package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
	"math"

	"golang.org/x/crypto/hkdf"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	apperrors "github.com/allisson/mailadmin/internal/errors"
)

// auditSigner signs audit records with HMAC-SHA256 under a key derived from
// the configured secret via HKDF-SHA256.
type auditSigner struct {
	secret []byte
}

// NewAuditSigner creates a new HMAC-based audit log signer. The secret is the
// raw configured value; the actual signing key is derived from it so the same
// secret can later serve other purposes without key reuse.
func NewAuditSigner(secret string) AuditSigner {
	return &auditSigner{secret: []byte(secret)}
}

// deriveSigningKey uses HKDF-SHA256 to derive a 32-byte signing key.
// Info parameter: "audit-log-signing-v1" (versioned for future algorithm changes).
func (a *auditSigner) deriveSigningKey() ([]byte, error) {
	info := []byte("audit-log-signing-v1")
	kdf := hkdf.New(sha256.New, a.secret, nil, info)

	signingKey := make([]byte, 32)
	if _, err := io.ReadFull(kdf, signingKey); err != nil {
		return nil, apperrors.Wrap(err, "failed to derive audit signing key")
	}

	return signingKey, nil
}

// canonicalizeLog converts an audit log to its canonical byte representation.
// Variable-length fields are length-prefixed to prevent ambiguity between
// adjacent fields.
func (a *auditSigner) canonicalizeLog(log *authDomain.AuditLog) []byte {
	buf := make([]byte, 0, 256)

	buf = appendLengthPrefixed(buf, []byte(log.RequestID))

	userID := make([]byte, 8)
	binary.BigEndian.PutUint64(userID, uint64(log.UserID))
	buf = append(buf, userID...)

	buf = appendLengthPrefixed(buf, []byte(log.Username))
	buf = appendLengthPrefixed(buf, []byte(log.Method))
	buf = appendLengthPrefixed(buf, []byte(log.Path))

	status := make([]byte, 4)
	binary.BigEndian.PutUint32(status, uint32(log.StatusCode))
	buf = append(buf, status...)

	ts := make([]byte, 8)
	binary.BigEndian.PutUint64(ts, uint64(log.CreatedAt.UnixNano()))
	buf = append(buf, ts...)

	return buf
}

// appendLengthPrefixed adds a 4-byte big-endian length prefix followed by data.
func appendLengthPrefixed(buf, data []byte) []byte {
	if len(data) > math.MaxUint32 {
		panic("audit field exceeds uint32 length")
	}
	prefix := make([]byte, 4)
	binary.BigEndian.PutUint32(prefix, uint32(len(data)))
	buf = append(buf, prefix...)
	return append(buf, data...)
}

// Sign computes the hex HMAC-SHA256 signature of the canonicalized log.
func (a *auditSigner) Sign(log *authDomain.AuditLog) (string, error) {
	key, err := a.deriveSigningKey()
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, key)
	mac.Write(a.canonicalizeLog(log))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify recomputes the signature and compares it in constant time against the
// stored one.
func (a *auditSigner) Verify(log *authDomain.AuditLog) (bool, error) {
	expected, err := a.Sign(log)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(expected), []byte(log.Signature)), nil
}
