package entity

import "time"

// RegistrationPasscode código pre-compartido que habilita el auto-registro
// con un rol concreto. Un código se consume una sola vez.
type RegistrationPasscode struct {
	ID        string
	Code      string
	Role      string // rol que habilita: admin, staff
	UsedBy    string // UserID que lo consumió; vacío si sigue libre
	UsedAt    *time.Time
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Usable indica si el código puede consumirse en el instante dado.
func (p *RegistrationPasscode) Usable(now time.Time) bool {
	return p.UsedBy == "" && now.Before(p.ExpiresAt)
}
