package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/staffhub/admin-api/internal/core/domain"
)

type PasswordTokenRepository struct {
	db *sqlx.DB
}

func NewPasswordTokenRepository(db *sqlx.DB) *PasswordTokenRepository {
	return &PasswordTokenRepository{db: db}
}

func (r *PasswordTokenRepository) Create(ctx context.Context, token *domain.PasswordToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO password_tokens (id, user_id, expiration_date)
		VALUES ($1, $2, $3)`,
		token.ID, token.UserID, token.ExpirationDate)
	if err != nil {
		return fmt.Errorf("create password token: %w", mapConstraintError(err))
	}
	return nil
}

func (r *PasswordTokenRepository) FindByID(ctx context.Context, id string) (*domain.PasswordToken, error) {
	var token domain.PasswordToken
	err := r.db.GetContext(ctx, &token, `
		SELECT id, user_id, expiration_date
		FROM password_tokens
		WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, fmt.Errorf("find password token: %w", err)
	}
	return &token, nil
}

// Expire rewrites the expiration date so the token cannot be replayed.
// Consumed tokens stay in the table as an audit trail.
func (r *PasswordTokenRepository) Expire(ctx context.Context, id string, at time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE password_tokens SET expiration_date = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("expire password token: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("expire password token: %w", err)
	}
	if affected == 0 {
		return domain.ErrTokenInvalid
	}
	return nil
}
