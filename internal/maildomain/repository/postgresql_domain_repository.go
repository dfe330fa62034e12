// Package repository provides data persistence implementations for mail domains.
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

const postgresDomainColumns = `id, owner_user_id, name, remote_relay, sender_verify, grey_listing, virus_check, spam_threshold`

// PostgreSQLDomainRepository handles mail domain persistence for PostgreSQL
type PostgreSQLDomainRepository struct {
	db *sql.DB
}

// NewPostgreSQLDomainRepository creates a new PostgreSQLDomainRepository
func NewPostgreSQLDomainRepository(db *sql.DB) *PostgreSQLDomainRepository {
	return &PostgreSQLDomainRepository{
		db: db,
	}
}

// Create inserts a new mail domain and fills in the generated ID
func (r *PostgreSQLDomainRepository) Create(ctx context.Context, mailDomain *domain.MailDomain) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO domains (owner_user_id, name, remote_relay, sender_verify, grey_listing, virus_check, spam_threshold, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW()) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		mailDomain.OwnerUserID, mailDomain.Name, mailDomain.RemoteRelay,
		mailDomain.SenderVerify, mailDomain.GreyListing, mailDomain.VirusCheck, mailDomain.SpamThreshold,
	).Scan(&mailDomain.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "domain already exists: "+mailDomain.Name)
		}
		return apperrors.Wrap(err, "failed to create domain")
	}
	return nil
}

// GetByName retrieves a mail domain by name
func (r *PostgreSQLDomainRepository) GetByName(ctx context.Context, name string) (*domain.MailDomain, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresDomainColumns + ` FROM domains WHERE name = $1`

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
func (r *PostgreSQLDomainRepository) ListByOwner(ctx context.Context, ownerUserID int64) ([]*domain.MailDomain, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresDomainColumns + ` FROM domains WHERE owner_user_id = $1 ORDER BY name`

	rows, err := querier.QueryContext(ctx, query, ownerUserID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list domains by owner")
	}
	return collectDomains(rows)
}

// List retrieves all mail domains ordered by name
func (r *PostgreSQLDomainRepository) List(ctx context.Context) ([]*domain.MailDomain, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresDomainColumns + ` FROM domains ORDER BY name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list domains")
	}
	return collectDomains(rows)
}

// Update persists the mutable fields of a mail domain
func (r *PostgreSQLDomainRepository) Update(ctx context.Context, mailDomain *domain.MailDomain) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE domains
			  SET owner_user_id = $1, remote_relay = $2, sender_verify = $3, grey_listing = $4,
			      virus_check = $5, spam_threshold = $6, updated_at = NOW()
			  WHERE id = $7`

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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDomain(row rowScanner) (*domain.MailDomain, error) {
	var mailDomain domain.MailDomain
	err := row.Scan(
		&mailDomain.ID, &mailDomain.OwnerUserID, &mailDomain.Name, &mailDomain.RemoteRelay,
		&mailDomain.SenderVerify, &mailDomain.GreyListing, &mailDomain.VirusCheck, &mailDomain.SpamThreshold,
	)
	if err != nil {
		return nil, err
	}
	return &mailDomain, nil
}

func collectDomains(rows *sql.Rows) ([]*domain.MailDomain, error) {
	defer rows.Close()

	var domains []*domain.MailDomain
	for rows.Next() {
		mailDomain, err := scanDomain(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan domain")
		}
		domains = append(domains, mailDomain)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate domains")
	}
	return domains, nil
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
