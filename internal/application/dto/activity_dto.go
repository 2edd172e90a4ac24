package dto

import "time"

// ActivityLogDTO salida de una entrada de actividad.
type ActivityLogDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityListResponse listado paginado de actividad.
type ActivityListResponse struct {
	Items []ActivityLogDTO `json:"items"`
	Page  PageResponse     `json:"page"`
}
