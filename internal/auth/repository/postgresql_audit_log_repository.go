package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/database"

	apperrors "github.com/allisson/mailadmin/internal/errors"
)

// PostgreSQLAuditLogRepository handles audit log persistence for PostgreSQL
type PostgreSQLAuditLogRepository struct {
	db *sql.DB
}

// NewPostgreSQLAuditLogRepository creates a new PostgreSQLAuditLogRepository
func NewPostgreSQLAuditLogRepository(db *sql.DB) *PostgreSQLAuditLogRepository {
	return &PostgreSQLAuditLogRepository{
		db: db,
	}
}

// Create inserts a new audit log entry and fills in the generated ID
func (r *PostgreSQLAuditLogRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO audit_logs (request_id, user_id, username, method, path, status_code, signature, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		log.RequestID, log.UserID, log.Username, log.Method, log.Path, log.StatusCode, log.Signature, log.CreatedAt,
	).Scan(&log.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create audit log")
	}
	return nil
}

// List retrieves audit log entries newest first
func (r *PostgreSQLAuditLogRepository) List(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, request_id, user_id, username, method, path, status_code, signature, created_at
			  FROM audit_logs ORDER BY id DESC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit logs")
	}
	defer rows.Close()

	var logs []*domain.AuditLog
	for rows.Next() {
		var log domain.AuditLog
		if err := rows.Scan(
			&log.ID, &log.RequestID, &log.UserID, &log.Username, &log.Method,
			&log.Path, &log.StatusCode, &log.Signature, &log.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit log")
		}
		logs = append(logs, &log)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate audit logs")
	}

	return logs, nil
}
