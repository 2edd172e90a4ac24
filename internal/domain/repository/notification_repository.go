package repository

import "github.com/invorya/stockroom-api/internal/domain/entity"

// NotificationRepository puerto de persistencia para notificaciones.
// Los listados por usuario incluyen siempre las notificaciones globales
// (user_id NULL).
type NotificationRepository interface {
	Create(n *entity.Notification) error
	// ListForUser devuelve las `limit` más recientes del usuario más las globales.
	ListForUser(userID string, limit int) ([]entity.Notification, error)
	UnreadCountForUser(userID string) (int, error)
	MarkRead(id, userID string) error
	// HasUnreadLowStock evita duplicar el aviso de stock bajo por producto.
	HasUnreadLowStock(productID string) (bool, error)
}
