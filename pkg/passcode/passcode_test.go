package passcode_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/pkg/passcode"
)

func TestGenerate_RespetaAlfabetoYPrimerCaracter(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := passcode.Generate(passcode.DefaultLength)
		require.NoError(t, err)
		require.Len(t, code, passcode.DefaultLength)

		assert.Contains(t, passcode.Letters, string(code[0]),
			"el primer carácter debe ser una letra: %s", code)
		for _, c := range code {
			assert.Contains(t, passcode.Alphabet, string(c),
				"carácter fuera del alfabeto en %s", code)
		}
		// Los confundibles nunca aparecen
		for _, banned := range []string{"I", "O", "0", "1"} {
			assert.False(t, strings.Contains(code, banned),
				"el código %s contiene el carácter excluido %s", code, banned)
		}
	}
}

func TestGenerate_LongitudInvalida(t *testing.T) {
	_, err := passcode.Generate(1)
	assert.Error(t, err)
}

func TestGenerateBatch_SinColisiones(t *testing.T) {
	codes, err := passcode.GenerateBatch(context.Background(), 5, 8, nil)
	require.NoError(t, err)
	assert.Len(t, codes, 5)

	seen := map[string]bool{}
	for _, c := range codes {
		assert.False(t, seen[c], "código duplicado en el lote: %s", c)
		seen[c] = true
	}
}

// Un slot cuyas 10 tentativas colisionan se descarta en silencio: el lote
// vuelve corto, nunca con error.
func TestGenerateBatch_SlotAgotadoSeDescarta(t *testing.T) {
	calls := 0
	exists := func(_ context.Context, _ string) (bool, error) {
		calls++
		// Las primeras 10 consultas (todas del primer slot) colisionan siempre.
		return calls <= 10, nil
	}

	codes, err := passcode.GenerateBatch(context.Background(), 5, 8, exists)
	require.NoError(t, err)
	assert.Len(t, codes, 4, "el lote debe volver corto por el slot agotado")
}

func TestGenerateBatch_TodoColisiona(t *testing.T) {
	exists := func(_ context.Context, _ string) (bool, error) { return true, nil }
	codes, err := passcode.GenerateBatch(context.Background(), 3, 8, exists)
	require.NoError(t, err)
	assert.Empty(t, codes)
}
