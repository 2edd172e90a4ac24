package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/pkg/logger"
)

func TestNew_EstampaService(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Service: "stockroom-api", Writer: &buf})

	log.Info().Str("k", "v").Msg("hola")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "stockroom-api", line["service"])
	assert.Equal(t, "v", line["k"])
	assert.Equal(t, "hola", line["message"])
}

func TestNew_NivelInvalidoCaeEnInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "verboso", Writer: &buf})

	log.Debug().Msg("no debe salir")
	log.Info().Msg("sí debe salir")

	out := buf.String()
	assert.NotContains(t, out, "no debe salir")
	assert.Contains(t, out, "sí debe salir")
}

func TestNew_NivelExplicitoFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "error", Writer: &buf})

	log.Warn().Msg("filtrado")
	log.Error().Msg("registrado")

	lines := strings.TrimSpace(buf.String())
	assert.NotContains(t, lines, "filtrado")
	assert.Contains(t, lines, "registrado")
}
