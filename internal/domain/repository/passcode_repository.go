package repository

import (
	"context"

	"github.com/invorya/stockroom-api/internal/domain/entity"
)

// PasscodeRepository puerto de persistencia para passcodes de registro.
type PasscodeRepository interface {
	Create(p *entity.RegistrationPasscode) error
	GetByCode(code string) (*entity.RegistrationPasscode, error)
	// CodeExists consulta colisión contra códigos no expirados (lo usa el
	// generador por lote como ExistsFunc).
	CodeExists(ctx context.Context, code string) (bool, error)
	MarkUsed(id, userID string) error
	List(limit, offset int) ([]entity.RegistrationPasscode, error)
}
