package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

const notificationColumns = `id, user_id, type, message, product_id, is_read, created_at`

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL.
// user_id NULL marca una notificación global.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO notifications (`+notificationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		n.ID, nullStr(n.UserID), n.Type, n.Message, nullStr(n.ProductID), n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListForUser devuelve las más recientes dirigidas al usuario o globales.
func (r *NotificationRepo) ListForUser(userID string, limit int) ([]entity.Notification, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+notificationColumns+`
		 FROM notifications
		 WHERE user_id = $1 OR user_id IS NULL
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []entity.Notification
	for rows.Next() {
		var (
			n              entity.Notification
			uid, productID *string
		)
		if err := rows.Scan(&n.ID, &uid, &n.Type, &n.Message, &productID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.UserID = derefStr(uid)
		n.ProductID = derefStr(productID)
		list = append(list, n)
	}
	return list, rows.Err()
}

// UnreadCountForUser cuenta las no leídas del usuario, globales incluidas.
func (r *NotificationRepo) UnreadCountForUser(userID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM notifications WHERE (user_id = $1 OR user_id IS NULL) AND NOT is_read`,
		userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// MarkRead marca como leída una notificación visible para el usuario.
func (r *NotificationRepo) MarkRead(id, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET is_read = true WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// HasUnreadLowStock indica si ya existe un aviso de stock bajo sin leer para
// el producto (evita duplicados en escaneos sucesivos).
func (r *NotificationRepo) HasUnreadLowStock(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE product_id = $1 AND type = $2 AND NOT is_read
		 )`,
		productID, entity.NotificationLowStock,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check unread low stock: %w", err)
	}
	return exists, nil
}
