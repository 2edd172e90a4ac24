package repository

import "github.com/invorya/stockroom-api/internal/domain/entity"

// ContactMessageRepository puerto de persistencia para mensajes de contacto.
type ContactMessageRepository interface {
	Create(m *entity.ContactMessage) error
	List(limit, offset int) ([]entity.ContactMessage, error)
}
