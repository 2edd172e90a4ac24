package entity

import "time"

// ActivityLog registro de auditoría de acciones de usuario.
type ActivityLog struct {
	ID        string
	UserID    string
	Action    string // login, product_create, stock_in, ...
	Detail    string
	CreatedAt time.Time
}
