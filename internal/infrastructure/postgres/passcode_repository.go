package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.PasscodeRepository = (*PasscodeRepo)(nil)

const passcodeColumns = `id, code, role, used_by, used_at, expires_at, created_at`

// PasscodeRepo implementación de PasscodeRepository sobre PostgreSQL.
type PasscodeRepo struct {
	q Querier
}

// NewPasscodeRepository construye el adaptador de passcodes.
func NewPasscodeRepository(q Querier) *PasscodeRepo {
	return &PasscodeRepo{q: q}
}

// Create persiste un passcode.
func (r *PasscodeRepo) Create(p *entity.RegistrationPasscode) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO registration_passcodes (`+passcodeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Code, p.Role, nullStr(p.UsedBy), p.UsedAt, p.ExpiresAt, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert passcode: %w", err)
	}
	return nil
}

// GetByCode obtiene un passcode por código. (nil, nil) si no existe.
func (r *PasscodeRepo) GetByCode(code string) (*entity.RegistrationPasscode, error) {
	var (
		p      entity.RegistrationPasscode
		usedBy *string
	)
	err := r.q.QueryRow(context.Background(),
		`SELECT `+passcodeColumns+` FROM registration_passcodes WHERE code = $1`, code,
	).Scan(&p.ID, &p.Code, &p.Role, &usedBy, &p.UsedAt, &p.ExpiresAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get passcode: %w", err)
	}
	p.UsedBy = derefStr(usedBy)
	return &p, nil
}

// CodeExists consulta colisión contra códigos no expirados (lo usa el
// generador por lote).
func (r *PasscodeRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM registration_passcodes WHERE code = $1 AND expires_at > now())`,
		code,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check passcode: %w", err)
	}
	return exists, nil
}

// MarkUsed consume el passcode para el usuario registrado.
func (r *PasscodeRepo) MarkUsed(id, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE registration_passcodes SET used_by = $2, used_at = now() WHERE id = $1`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("mark passcode used: %w", err)
	}
	return nil
}

// List passcodes más recientes primero.
func (r *PasscodeRepo) List(limit, offset int) ([]entity.RegistrationPasscode, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+passcodeColumns+` FROM registration_passcodes ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list passcodes: %w", err)
	}
	defer rows.Close()

	var list []entity.RegistrationPasscode
	for rows.Next() {
		var (
			p      entity.RegistrationPasscode
			usedBy *string
		)
		if err := rows.Scan(&p.ID, &p.Code, &p.Role, &usedBy, &p.UsedAt, &p.ExpiresAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan passcode: %w", err)
		}
		p.UsedBy = derefStr(usedBy)
		list = append(list, p)
	}
	return list, rows.Err()
}
