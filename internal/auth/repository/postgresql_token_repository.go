// Package repository provides data persistence implementations for
// authentication tokens and audit logs.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/database"

	apperrors "github.com/allisson/mailadmin/internal/errors"
)

// PostgreSQLTokenRepository handles auth token persistence for PostgreSQL
type PostgreSQLTokenRepository struct {
	db *sql.DB
}

// NewPostgreSQLTokenRepository creates a new PostgreSQLTokenRepository
func NewPostgreSQLTokenRepository(db *sql.DB) *PostgreSQLTokenRepository {
	return &PostgreSQLTokenRepository{
		db: db,
	}
}

// Create inserts a new auth token and fills in the generated ID
func (r *PostgreSQLTokenRepository) Create(ctx context.Context, token *domain.AuthToken) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO auth_tokens (user_id, token, label, created_at)
			  VALUES ($1, $2, $3, NOW()) RETURNING id`

	err := querier.QueryRowContext(ctx, query, token.UserID, token.Token, token.Label).Scan(&token.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create auth token")
	}
	return nil
}

// GetByToken retrieves an auth token by its token value
func (r *PostgreSQLTokenRepository) GetByToken(ctx context.Context, token string) (*domain.AuthToken, error) {
	var authToken domain.AuthToken
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, token, label FROM auth_tokens WHERE token = $1`

	err := querier.QueryRowContext(ctx, query, token).Scan(
		&authToken.ID, &authToken.UserID, &authToken.Token, &authToken.Label,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get auth token")
	}

	return &authToken, nil
}

// ListByUser retrieves all auth tokens owned by a user
func (r *PostgreSQLTokenRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.AuthToken, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, token, label FROM auth_tokens WHERE user_id = $1 ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list auth tokens")
	}
	defer rows.Close()

	var tokens []*domain.AuthToken
	for rows.Next() {
		var token domain.AuthToken
		if err := rows.Scan(&token.ID, &token.UserID, &token.Token, &token.Label); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan auth token")
		}
		tokens = append(tokens, &token)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate auth tokens")
	}

	return tokens, nil
}

// Delete removes an auth token by ID
func (r *PostgreSQLTokenRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM auth_tokens WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete auth token")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}
