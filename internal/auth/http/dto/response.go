package dto

import (
	"time"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
)

// TokenResponse is one bearer token as returned to its owner. The token value
// is included: listing own tokens back is part of the contract.
type TokenResponse struct {
	Token string `json:"token"`
	Label string `json:"label"`
}

// ListTokensResponse wraps the caller's tokens.
type ListTokensResponse struct {
	Tokens []TokenResponse `json:"tokens"`
}

// RevokeTokenResponse reports the label of the token that was revoked.
type RevokeTokenResponse struct {
	Label string `json:"label"`
}

// MapTokenToResponse converts a domain token to its response form.
func MapTokenToResponse(token *authDomain.AuthToken) TokenResponse {
	return TokenResponse{
		Token: token.Token,
		Label: token.Label,
	}
}

// MapTokensToListResponse converts a slice of domain tokens to the list
// response.
func MapTokensToListResponse(tokens []*authDomain.AuthToken) ListTokensResponse {
	response := ListTokensResponse{Tokens: make([]TokenResponse, 0, len(tokens))}
	for _, token := range tokens {
		response.Tokens = append(response.Tokens, MapTokenToResponse(token))
	}
	return response
}

// AuditLogResponse is one signed audit record.
type AuditLogResponse struct {
	ID         int64     `json:"id"`
	RequestID  string    `json:"request_id"`
	UserID     int64     `json:"user_id"`
	Username   string    `json:"username"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	Signature  string    `json:"signature"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListAuditLogsResponse wraps a page of audit records.
type ListAuditLogsResponse struct {
	AuditLogs []AuditLogResponse `json:"audit_logs"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// MapAuditLogsToListResponse converts audit records to the list response.
func MapAuditLogsToListResponse(logs []*authDomain.AuditLog, limit, offset int) ListAuditLogsResponse {
	response := ListAuditLogsResponse{
		AuditLogs: make([]AuditLogResponse, 0, len(logs)),
		Limit:     limit,
		Offset:    offset,
	}
	for _, log := range logs {
		response.AuditLogs = append(response.AuditLogs, AuditLogResponse{
			ID:         log.ID,
			RequestID:  log.RequestID,
			UserID:     log.UserID,
			Username:   log.Username,
			Method:     log.Method,
			Path:       log.Path,
			StatusCode: log.StatusCode,
			Signature:  log.Signature,
			CreatedAt:  log.CreatedAt,
		})
	}
	return response
}
