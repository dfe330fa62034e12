// Package repository provides data persistence implementations for mail entries.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/mailadmin/internal/database"
	"github.com/allisson/mailadmin/internal/mailentry/domain"

	apperrors "github.com/allisson/mailadmin/internal/errors"
)

// PostgreSQLEntryRepository handles mail entry persistence for PostgreSQL
type PostgreSQLEntryRepository struct {
	db *sql.DB
}

// NewPostgreSQLEntryRepository creates a new PostgreSQLEntryRepository
func NewPostgreSQLEntryRepository(db *sql.DB) *PostgreSQLEntryRepository {
	return &PostgreSQLEntryRepository{
		db: db,
	}
}

// Create inserts a new mail entry and fills in the generated ID
func (r *PostgreSQLEntryRepository) Create(ctx context.Context, entry *domain.MailEntry) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO mail_entries (domain_id, name, kind, secret, expansion, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		entry.DomainID, entry.Name, string(entry.Kind), entry.Secret, entry.Expansion,
	).Scan(&entry.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "entry already exists: "+entry.Name)
		}
		return apperrors.Wrap(err, "failed to create mail entry")
	}
	return nil
}

// GetByName retrieves a mail entry by domain and local part
func (r *PostgreSQLEntryRepository) GetByName(ctx context.Context, domainID int64, name string) (*domain.MailEntry, error) {
	var entry domain.MailEntry
	var kind string
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain_id, name, kind, secret, expansion
			  FROM mail_entries WHERE domain_id = $1 AND name = $2`

	err := querier.QueryRowContext(ctx, query, domainID, name).Scan(
		&entry.ID, &entry.DomainID, &entry.Name, &kind, &entry.Secret, &entry.Expansion,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get mail entry")
	}
	entry.Kind = domain.Kind(kind)

	return &entry, nil
}

// ListByDomain retrieves the mail entries of a domain, ordered by name
func (r *PostgreSQLEntryRepository) ListByDomain(ctx context.Context, domainID int64) ([]*domain.MailEntry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain_id, name, kind, secret, expansion
			  FROM mail_entries WHERE domain_id = $1 ORDER BY name`

	rows, err := querier.QueryContext(ctx, query, domainID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list mail entries")
	}
	defer rows.Close()

	var entries []*domain.MailEntry
	for rows.Next() {
		var entry domain.MailEntry
		var kind string
		if err := rows.Scan(
			&entry.ID, &entry.DomainID, &entry.Name, &kind, &entry.Secret, &entry.Expansion,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan mail entry")
		}
		entry.Kind = domain.Kind(kind)
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate mail entries")
	}

	return entries, nil
}

// Update persists the mutable payload of a mail entry
func (r *PostgreSQLEntryRepository) Update(ctx context.Context, entry *domain.MailEntry) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE mail_entries SET secret = $1, expansion = $2, updated_at = NOW() WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, entry.Secret, entry.Expansion, entry.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update mail entry")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// Delete removes a mail entry by ID
func (r *PostgreSQLEntryRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM mail_entries WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete mail entry")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
