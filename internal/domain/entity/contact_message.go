package entity

import "time"

// ContactMessage mensaje del formulario público de contacto.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	CreatedAt time.Time
}
