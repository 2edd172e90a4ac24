package admin

import (
	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

// ActivityUseCase consulta del registro de auditoría.
type ActivityUseCase struct {
	repo repository.ActivityLogRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityLogRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// List entradas de actividad más recientes primero.
func (uc *ActivityUseCase) List(page dto.PageRequest) (*dto.ActivityListResponse, error) {
	page.DefaultPage()
	rows, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityLogDTO, 0, len(rows))
	for _, l := range rows {
		items = append(items, dto.ActivityLogDTO{
			ID:        l.ID,
			UserID:    l.UserID,
			Action:    l.Action,
			Detail:    l.Detail,
			CreatedAt: l.CreatedAt,
		})
	}
	return &dto.ActivityListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
