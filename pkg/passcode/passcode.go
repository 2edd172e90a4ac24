// Package passcode genera códigos de registro pre-compartidos.
//
// Reglas del formato: alfabeto restringido a mayúsculas y dígitos excluyendo
// los caracteres confundibles I, O, 0 y 1; el primer carácter es siempre una
// letra. La generación por lote reintenta cada posición hasta 10 veces contra
// los códigos vigentes; una posición que agota los reintentos se descarta en
// silencio, por lo que el lote puede volver más corto de lo pedido.
package passcode

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Letters letras permitidas (sin I ni O).
	Letters = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	// Digits dígitos permitidos (sin 0 ni 1).
	Digits = "23456789"
	// Alphabet alfabeto completo para las posiciones 2..n.
	Alphabet = Letters + Digits

	// DefaultLength longitud de código por defecto.
	DefaultLength = 8

	// maxAttempts reintentos por posición del lote antes de descartarla.
	maxAttempts = 10
)

// ExistsFunc consulta si un código ya existe entre los códigos no expirados.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generate produce un código aleatorio de la longitud dada.
// No consulta unicidad; para lotes usar GenerateBatch.
func Generate(length int) (string, error) {
	if length < 2 {
		return "", fmt.Errorf("passcode: longitud mínima 2, recibida %d", length)
	}
	var b strings.Builder
	b.Grow(length)

	c, err := randomChar(Letters) // primer carácter siempre alfabético
	if err != nil {
		return "", err
	}
	b.WriteByte(c)

	for i := 1; i < length; i++ {
		c, err := randomChar(Alphabet)
		if err != nil {
			return "", err
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// GenerateBatch genera hasta n códigos únicos entre sí y frente a exists.
// Cada posición reintenta hasta 10 veces; si la décima también colisiona, la
// posición se descarta sin error y el lote vuelve con menos códigos de los
// pedidos (el caller detecta el faltante por len del resultado).
func GenerateBatch(ctx context.Context, n, length int, exists ExistsFunc) ([]string, error) {
	codes := make([]string, 0, n)
	seen := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			code, err := Generate(length)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[code]; dup {
				continue
			}
			if exists != nil {
				taken, err := exists(ctx, code)
				if err != nil {
					return nil, err
				}
				if taken {
					continue
				}
			}
			seen[code] = struct{}{}
			codes = append(codes, code)
			break
		}
	}
	return codes, nil
}

func randomChar(set string) (byte, error) {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("passcode: fuente aleatoria: %w", err)
	}
	return set[idx.Int64()], nil
}
