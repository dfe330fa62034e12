// Package service provides authentication-related services for token generation
// and audit record signing.
package service

import (
	"crypto/md5" //nolint:gosec // token shape compatibility, not integrity
	"encoding/hex"

	"github.com/google/uuid"

	apperrors "github.com/allisson/mailadmin/internal/errors"
)

// tokenService generates bearer tokens as 32-character hex strings.
type tokenService struct{}

// GenerateToken creates a new bearer token. The value is the md5 digest of a
// fresh random UUID, which keeps issued tokens in the same 32-hex shape older
// deployments already have on disk. The UUID supplies the randomness; md5 is
// only a formatting step here.
func (t *tokenService) GenerateToken() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", apperrors.Wrap(err, "failed to generate random token")
	}

	sum := md5.Sum([]byte(u.String())) //nolint:gosec // see above
	return hex.EncodeToString(sum[:]), nil
}

// NewTokenService creates a new TokenService instance.
func NewTokenService() TokenService {
	return &tokenService{}
}
