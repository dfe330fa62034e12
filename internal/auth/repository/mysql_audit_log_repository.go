package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/database"

	apperrors "github.com/allisson/mailadmin/internal/errors"
)

// MySQLAuditLogRepository handles audit log persistence for MySQL
type MySQLAuditLogRepository struct {
	db *sql.DB
}

// NewMySQLAuditLogRepository creates a new MySQLAuditLogRepository
func NewMySQLAuditLogRepository(db *sql.DB) *MySQLAuditLogRepository {
	return &MySQLAuditLogRepository{
		db: db,
	}
}

// Create inserts a new audit log entry and fills in the generated ID
func (r *MySQLAuditLogRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO audit_logs (request_id, user_id, username, method, path, status_code, signature, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		log.RequestID, log.UserID, log.Username, log.Method, log.Path, log.StatusCode, log.Signature, log.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create audit log")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read generated audit log id")
	}
	log.ID = id
	return nil
}

// List retrieves audit log entries newest first
func (r *MySQLAuditLogRepository) List(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, request_id, user_id, username, method, path, status_code, signature, created_at
			  FROM audit_logs ORDER BY id DESC LIMIT ? OFFSET ?`

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
