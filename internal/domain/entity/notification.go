package entity

import "time"

// Tipos de notificación.
const (
	NotificationLowStock = "low_stock"
	NotificationSystem   = "system"
)

// Notification aviso para un usuario. UserID vacío = notificación global
// (visible para todos los usuarios autenticados).
type Notification struct {
	ID        string
	UserID    string // vacío => global
	Type      string
	Message   string
	ProductID string // vacío si no refiere a un producto
	IsRead    bool
	CreatedAt time.Time
}
