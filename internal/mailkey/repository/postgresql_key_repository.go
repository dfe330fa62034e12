// Package repository provides data persistence implementations for domain keys.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/mailadmin/internal/database"
	"github.com/allisson/mailadmin/internal/mailkey/domain"

	apperrors "github.com/allisson/mailadmin/internal/errors"
)

// PostgreSQLKeyRepository handles domain key persistence for PostgreSQL
type PostgreSQLKeyRepository struct {
	db *sql.DB
}

// NewPostgreSQLKeyRepository creates a new PostgreSQLKeyRepository
func NewPostgreSQLKeyRepository(db *sql.DB) *PostgreSQLKeyRepository {
	return &PostgreSQLKeyRepository{
		db: db,
	}
}

// Create inserts a new domain key and fills in the generated ID
func (r *PostgreSQLKeyRepository) Create(ctx context.Context, key *domain.DomainKey) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO domain_keys (domain_id, selector, private_key, public_key, signing, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		key.DomainID, key.Selector, key.PrivateKey, key.PublicKey, key.Signing,
	).Scan(&key.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return &domain.SelectorInUseError{Selector: key.Selector}
		}
		return apperrors.Wrap(err, "failed to create domain key")
	}
	return nil
}

// GetBySelector retrieves a domain key by domain and selector
func (r *PostgreSQLKeyRepository) GetBySelector(ctx context.Context, domainID int64, selector string) (*domain.DomainKey, error) {
	var key domain.DomainKey
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain_id, selector, private_key, public_key, signing
			  FROM domain_keys WHERE domain_id = $1 AND selector = $2`

	err := querier.QueryRowContext(ctx, query, domainID, selector).Scan(
		&key.ID, &key.DomainID, &key.Selector, &key.PrivateKey, &key.PublicKey, &key.Signing,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get domain key")
	}

	return &key, nil
}

// ListByDomain retrieves the keys of a domain, ordered by selector
func (r *PostgreSQLKeyRepository) ListByDomain(ctx context.Context, domainID int64) ([]*domain.DomainKey, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain_id, selector, private_key, public_key, signing
			  FROM domain_keys WHERE domain_id = $1 ORDER BY selector`

	rows, err := querier.QueryContext(ctx, query, domainID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list domain keys")
	}
	defer rows.Close()

	var keys []*domain.DomainKey
	for rows.Next() {
		var key domain.DomainKey
		if err := rows.Scan(
			&key.ID, &key.DomainID, &key.Selector, &key.PrivateKey, &key.PublicKey, &key.Signing,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan domain key")
		}
		keys = append(keys, &key)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate domain keys")
	}

	return keys, nil
}

// SetSigning sets the signing flag on one key
func (r *PostgreSQLKeyRepository) SetSigning(ctx context.Context, id int64, signing bool) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE domain_keys SET signing = $1, updated_at = NOW() WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, signing, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to set signing key")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrKeyNotFound
	}
	return nil
}

// Delete removes a domain key by ID
func (r *PostgreSQLKeyRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM domain_keys WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete domain key")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrKeyNotFound
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
