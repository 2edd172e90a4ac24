package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo registro de auditoría sobre PostgreSQL (append-only).
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador de actividad.
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create apendea una entrada de actividad.
func (r *ActivityLogRepo) Create(l *entity.ActivityLog) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO activity_logs (id, user_id, action, detail, created_at) VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.UserID, l.Action, l.Detail, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List entradas más recientes primero.
func (r *ActivityLogRepo) List(limit, offset int) ([]entity.ActivityLog, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, user_id, action, detail, created_at
		 FROM activity_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()

	var list []entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.Detail, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
