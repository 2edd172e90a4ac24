package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.PasswordResetRepository = (*PasswordResetRepo)(nil)

// PasswordResetRepo tokens de restablecimiento sobre PostgreSQL.
type PasswordResetRepo struct {
	q Querier
}

// NewPasswordResetRepository construye el adaptador de resets.
func NewPasswordResetRepository(q Querier) *PasswordResetRepo {
	return &PasswordResetRepo{q: q}
}

// Create persiste un token de reset.
func (r *PasswordResetRepo) Create(t *entity.PasswordReset) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO password_resets (id, user_id, token, used, expires_at, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.UserID, t.Token, t.Used, t.ExpiresAt, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert password reset: %w", err)
	}
	return nil
}

// GetByToken obtiene un reset por token. (nil, nil) si no existe.
func (r *PasswordResetRepo) GetByToken(token string) (*entity.PasswordReset, error) {
	var t entity.PasswordReset
	err := r.q.QueryRow(context.Background(),
		`SELECT id, user_id, token, used, expires_at, created_at FROM password_resets WHERE token = $1`,
		token,
	).Scan(&t.ID, &t.UserID, &t.Token, &t.Used, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get password reset: %w", err)
	}
	return &t, nil
}

// MarkUsed consume el token.
func (r *PasswordResetRepo) MarkUsed(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE password_resets SET used = true WHERE id = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("mark password reset used: %w", err)
	}
	return nil
}
