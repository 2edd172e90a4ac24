package repository

import "github.com/invorya/stockroom-api/internal/domain/entity"

// ActivityLogRepository puerto del registro de actividad (append-only).
type ActivityLogRepository interface {
	Create(log *entity.ActivityLog) error
	List(limit, offset int) ([]entity.ActivityLog, error)
}
