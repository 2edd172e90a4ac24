package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.ContactMessageRepository = (*ContactMessageRepo)(nil)

// ContactMessageRepo mensajes del formulario de contacto sobre PostgreSQL.
type ContactMessageRepo struct {
	q Querier
}

// NewContactMessageRepository construye el adaptador de contacto.
func NewContactMessageRepository(q Querier) *ContactMessageRepo {
	return &ContactMessageRepo{q: q}
}

// Create persiste un mensaje.
func (r *ContactMessageRepo) Create(m *entity.ContactMessage) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO contact_messages (id, name, email, subject, body, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Name, m.Email, m.Subject, m.Body, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// List mensajes más recientes primero.
func (r *ContactMessageRepo) List(limit, offset int) ([]entity.ContactMessage, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, email, subject, body, created_at
		 FROM contact_messages ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var list []entity.ContactMessage
	for rows.Next() {
		var m entity.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
