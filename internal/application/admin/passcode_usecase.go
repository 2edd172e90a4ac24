// Package admin casos de uso exclusivos del rol admin: lotes de passcodes de
// registro y consulta de la actividad.
package admin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/pkg/passcode"
)

const (
	maxBatchSize       = 50
	defaultExpiresDays = 30
)

// PasscodeUseCase genera y lista passcodes de registro.
type PasscodeUseCase struct {
	repo         repository.PasscodeRepository
	activityRepo repository.ActivityLogRepository
}

// NewPasscodeUseCase construye el caso de uso.
func NewPasscodeUseCase(repo repository.PasscodeRepository, activityRepo repository.ActivityLogRepository) *PasscodeUseCase {
	return &PasscodeUseCase{repo: repo, activityRepo: activityRepo}
}

// Generate crea un lote de passcodes para el rol pedido. Las posiciones que
// agotan reintentos por colisión se descartan en silencio, así que Generated
// puede quedar por debajo de Requested.
func (uc *PasscodeUseCase) Generate(ctx context.Context, adminID string, in dto.GeneratePasscodesRequest) (*dto.GeneratePasscodesResponse, error) {
	if in.Count < 1 || in.Count > maxBatchSize {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleStaff {
		return nil, domain.ErrInvalidInput
	}
	days := in.ExpiresDays
	if days <= 0 {
		days = defaultExpiresDays
	}

	codes, err := passcode.GenerateBatch(ctx, in.Count, passcode.DefaultLength, uc.repo.CodeExists)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expires := now.Add(time.Duration(days) * 24 * time.Hour)
	for _, code := range codes {
		p := &entity.RegistrationPasscode{
			ID:        uuid.New().String(),
			Code:      code,
			Role:      in.Role,
			ExpiresAt: expires,
			CreatedAt: now,
		}
		if err := uc.repo.Create(p); err != nil {
			return nil, err
		}
	}
	if uc.activityRepo != nil {
		_ = uc.activityRepo.Create(&entity.ActivityLog{
			ID:        uuid.New().String(),
			UserID:    adminID,
			Action:    "passcodes_generate",
			Detail:    "role=" + in.Role,
			CreatedAt: now,
		})
	}
	return &dto.GeneratePasscodesResponse{
		Requested: in.Count,
		Generated: len(codes),
		Codes:     codes,
	}, nil
}

// List passcodes más recientes primero, paginado.
func (uc *PasscodeUseCase) List(limit, offset int) ([]dto.PasscodeDTO, error) {
	rows, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PasscodeDTO, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.PasscodeDTO{
			ID:        p.ID,
			Code:      p.Code,
			Role:      p.Role,
			Used:      p.UsedBy != "",
			UsedBy:    p.UsedBy,
			UsedAt:    p.UsedAt,
			ExpiresAt: p.ExpiresAt,
			CreatedAt: p.CreatedAt,
		})
	}
	return out, nil
}
