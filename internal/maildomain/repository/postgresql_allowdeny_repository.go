package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/mailadmin/internal/database"
	"github.com/allisson/mailadmin/internal/maildomain/domain"

	apperrors "github.com/allisson/mailadmin/internal/errors"
)

// PostgreSQLAllowDenyRepository reads the per-domain allow/deny list for PostgreSQL
type PostgreSQLAllowDenyRepository struct {
	db *sql.DB
}

// NewPostgreSQLAllowDenyRepository creates a new PostgreSQLAllowDenyRepository
func NewPostgreSQLAllowDenyRepository(db *sql.DB) *PostgreSQLAllowDenyRepository {
	return &PostgreSQLAllowDenyRepository{
		db: db,
	}
}

// ListByDomain retrieves the allow/deny entries of a domain, allows first
func (r *PostgreSQLAllowDenyRepository) ListByDomain(ctx context.Context, domainID int64) ([]*domain.AllowDenyEntry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain_id, allow, value FROM allow_deny_list
			  WHERE domain_id = $1 ORDER BY allow DESC, value`

	rows, err := querier.QueryContext(ctx, query, domainID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list allow/deny entries")
	}
	defer rows.Close()

	var entries []*domain.AllowDenyEntry
	for rows.Next() {
		var entry domain.AllowDenyEntry
		if err := rows.Scan(&entry.ID, &entry.DomainID, &entry.Allow, &entry.Value); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan allow/deny entry")
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate allow/deny entries")
	}

	return entries, nil
}
