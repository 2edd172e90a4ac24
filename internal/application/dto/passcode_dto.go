package dto

import "time"

// GeneratePasscodesRequest pide un lote de passcodes para un rol.
type GeneratePasscodesRequest struct {
	Count       int    `json:"count"`
	Role        string `json:"role"` // admin | staff
	ExpiresDays int    `json:"expires_days"`
}

// GeneratePasscodesResponse lote generado. Generated puede ser menor que
// Requested: las posiciones que agotaron reintentos se descartan en silencio.
type GeneratePasscodesResponse struct {
	Requested int      `json:"requested"`
	Generated int      `json:"generated"`
	Codes     []string `json:"codes"`
}

// PasscodeDTO salida de un passcode para el listado admin.
type PasscodeDTO struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Role      string     `json:"role"`
	Used      bool       `json:"used"`
	UsedBy    string     `json:"used_by,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}
