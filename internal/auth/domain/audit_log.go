package domain

import "time"

// AuditLog records one successful administrative mutation. Records are signed
// so tampering with the stored trail is detectable; the signature covers the
// canonicalized fields, see the auth service package.
type AuditLog struct {
	ID         int64
	RequestID  string
	UserID     int64
	Username   string
	Method     string
	Path       string
	StatusCode int
	Signature  string
	CreatedAt  time.Time
}
