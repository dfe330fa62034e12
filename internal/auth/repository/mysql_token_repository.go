package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/database"

	apperrors "github.com/allisson/mailadmin/internal/errors"
)

// MySQLTokenRepository handles auth token persistence for MySQL
type MySQLTokenRepository struct {
	db *sql.DB
}

// NewMySQLTokenRepository creates a new MySQLTokenRepository
func NewMySQLTokenRepository(db *sql.DB) *MySQLTokenRepository {
	return &MySQLTokenRepository{
		db: db,
	}
}

// Create inserts a new auth token and fills in the generated ID
func (r *MySQLTokenRepository) Create(ctx context.Context, token *domain.AuthToken) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO auth_tokens (user_id, token, label, created_at)
			  VALUES (?, ?, ?, NOW())`

	result, err := querier.ExecContext(ctx, query, token.UserID, token.Token, token.Label)
	if err != nil {
		return apperrors.Wrap(err, "failed to create auth token")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read generated token id")
	}
	token.ID = id
	return nil
}

// GetByToken retrieves an auth token by its token value
func (r *MySQLTokenRepository) GetByToken(ctx context.Context, token string) (*domain.AuthToken, error) {
	var authToken domain.AuthToken
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, token, label FROM auth_tokens WHERE token = ?`

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
func (r *MySQLTokenRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.AuthToken, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, token, label FROM auth_tokens WHERE user_id = ? ORDER BY id`

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
func (r *MySQLTokenRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM auth_tokens WHERE id = ?`

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
