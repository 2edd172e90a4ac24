package entity

import "time"

// PasswordReset token de restablecimiento de contraseña (un solo uso).
type PasswordReset struct {
	ID        string
	UserID    string
	Token     string
	Used      bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Usable indica si el token sigue vigente.
func (r *PasswordReset) Usable(now time.Time) bool {
	return !r.Used && now.Before(r.ExpiresAt)
}
