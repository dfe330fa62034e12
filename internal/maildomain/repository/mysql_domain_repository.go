package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/mailadmin/internal/database"
	"github.com/allisson/mailadmin/internal/maildomain/domain"

	apperrors "github.com/allisson/mailadmin/internal/errors"
)

const mysqlDomainColumns = `id, owner_user_id, name, remote_relay, sender_verify, grey_listing, virus_check, spam_threshold`

// MySQLDomainRepository handles mail domain persistence for MySQL
type MySQLDomainRepository struct {
	db *sql.DB
}

// NewMySQLDomainRepository creates a new MySQLDomainRepository
func NewMySQLDomainRepository(db *sql.DB) *MySQLDomainRepository {
	return &MySQLDomainRepository{
		db: db,
	}
}

// Create inserts a new mail domain and fills in the generated ID
func (r *MySQLDomainRepository) Create(ctx context.Context, mailDomain *domain.MailDomain) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO domains (owner_user_id, name, remote_relay, sender_verify, grey_listing, virus_check, spam_threshold, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query,
		mailDomain.OwnerUserID, mailDomain.Name, mailDomain.RemoteRelay,
		mailDomain.SenderVerify, mailDomain.GreyListing, mailDomain.VirusCheck, mailDomain.SpamThreshold,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "domain already exists: "+mailDomain.Name)
		}
		return apperrors.Wrap(err, "failed to create domain")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read generated domain id")
	}
	mailDomain.ID = id
	return nil
}

// GetByName retrieves a mail domain by name
func (r *MySQLDomainRepository) GetByName(ctx context.Context, name string) (*domain.MailDomain, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlDomainColumns + ` FROM domains WHERE name = ?`

	mailDomain, err := scanDomain(querier.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDomainNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get domain by name")
	}
	return mailDomain, nil
}

// ListByOwner retrieves the mail domains owned by a user, ordered by name
func (r *MySQLDomainRepository) ListByOwner(ctx context.Context, ownerUserID int64) ([]*domain.MailDomain, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlDomainColumns + ` FROM domains WHERE owner_user_id = ? ORDER BY name`

	rows, err := querier.QueryContext(ctx, query, ownerUserID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list domains by owner")
	}
	return collectDomains(rows)
}

// List retrieves all mail domains ordered by name
func (r *MySQLDomainRepository) List(ctx context.Context) ([]*domain.MailDomain, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlDomainColumns + ` FROM domains ORDER BY name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list domains")
	}
	return collectDomains(rows)
}

// Update persists the mutable fields of a mail domain
func (r *MySQLDomainRepository) Update(ctx context.Context, mailDomain *domain.MailDomain) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE domains
			  SET owner_user_id = ?, remote_relay = ?, sender_verify = ?, grey_listing = ?,
			      virus_check = ?, spam_threshold = ?, updated_at = NOW()
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		mailDomain.OwnerUserID, mailDomain.RemoteRelay, mailDomain.SenderVerify,
		mailDomain.GreyListing, mailDomain.VirusCheck, mailDomain.SpamThreshold, mailDomain.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update domain")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrDomainNotFound
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
