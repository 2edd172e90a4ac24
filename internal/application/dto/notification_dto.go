package dto

import "time"

// NotificationDTO salida de una notificación.
type NotificationDTO struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	ProductID string    `json:"product_id,omitempty"`
	Global    bool      `json:"global"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse las 20 más recientes del usuario (más globales).
type NotificationListResponse struct {
	Items []NotificationDTO `json:"items"`
}

// UnreadCountResponse contador de no leídas.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
