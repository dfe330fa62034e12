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

// MySQLKeyRepository handles domain key persistence for MySQL
type MySQLKeyRepository struct {
	db *sql.DB
}

// NewMySQLKeyRepository creates a new MySQLKeyRepository
func NewMySQLKeyRepository(db *sql.DB) *MySQLKeyRepository {
	return &MySQLKeyRepository{
		db: db,
	}
}

// Create inserts a new domain key and fills in the generated ID
func (r *MySQLKeyRepository) Create(ctx context.Context, key *domain.DomainKey) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO domain_keys (domain_id, selector, private_key, public_key, signing, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query,
		key.DomainID, key.Selector, key.PrivateKey, key.PublicKey, key.Signing,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return &domain.SelectorInUseError{Selector: key.Selector}
		}
		return apperrors.Wrap(err, "failed to create domain key")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read generated key id")
	}
	key.ID = id
	return nil
}

// GetBySelector retrieves a domain key by domain and selector
func (r *MySQLKeyRepository) GetBySelector(ctx context.Context, domainID int64, selector string) (*domain.DomainKey, error) {
	var key domain.DomainKey
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain_id, selector, private_key, public_key, signing
			  FROM domain_keys WHERE domain_id = ? AND selector = ?`

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
func (r *MySQLKeyRepository) ListByDomain(ctx context.Context, domainID int64) ([]*domain.DomainKey, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, domain_id, selector, private_key, public_key, signing
			  FROM domain_keys WHERE domain_id = ? ORDER BY selector`

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
func (r *MySQLKeyRepository) SetSigning(ctx context.Context, id int64, signing bool) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE domain_keys SET signing = ?, updated_at = NOW() WHERE id = ?`

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
func (r *MySQLKeyRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM domain_keys WHERE id = ?`

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

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
