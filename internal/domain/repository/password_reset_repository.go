package repository

import "github.com/invorya/stockroom-api/internal/domain/entity"

// PasswordResetRepository puerto de persistencia para tokens de reset.
type PasswordResetRepository interface {
	Create(r *entity.PasswordReset) error
	GetByToken(token string) (*entity.PasswordReset, error)
	MarkUsed(id string) error
}
