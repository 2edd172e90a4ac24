package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

// ContactUseCase formulario público de contacto.
type ContactUseCase struct {
	repo repository.ContactMessageRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactMessageRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Submit guarda un mensaje del formulario público. Es el único endpoint de
// escritura sin autenticación, así que valida estricto.
func (uc *ContactUseCase) Submit(in dto.ContactRequest) (*dto.ContactMessageDTO, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	body := strings.TrimSpace(in.Body)
	if name == "" || body == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.ContactMessage{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Subject:   strings.TrimSpace(in.Subject),
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toContactDTO(m), nil
}

// List mensajes recibidos, más recientes primero (solo admin).
func (uc *ContactUseCase) List(limit, offset int) ([]dto.ContactMessageDTO, error) {
	rows, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactMessageDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toContactDTO(&m))
	}
	return out, nil
}

func toContactDTO(m *entity.ContactMessage) *dto.ContactMessageDTO {
	return &dto.ContactMessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}
