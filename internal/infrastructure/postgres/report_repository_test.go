package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerQuery_SinFechas_NoAcota(t *testing.T) {
	query, args := ledgerQuery(time.Time{}, time.Time{}, "", 0)

	assert.NotContains(t, query, "created_at >=",
		"sin from no debe haber cota inferior")
	assert.NotContains(t, query, "created_at <=",
		"sin to no debe haber cota superior: una fecha cero como $2 dejaría fuera todas las filas")
	assert.NotContains(t, query, "LIMIT")
	assert.Empty(t, args)
}

func TestLedgerQuery_RangoCompleto(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	query, args := ledgerQuery(from, to, "", 0)

	assert.Contains(t, query, "t.created_at >= $1")
	assert.Contains(t, query, "t.created_at <= $2")
	require.Len(t, args, 2)
	assert.Equal(t, from, args[0])
	assert.Equal(t, to, args[1])
}

func TestLedgerQuery_SoloFrom(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	query, args := ledgerQuery(from, time.Time{}, "", 0)

	assert.Contains(t, query, "t.created_at >= $1")
	assert.NotContains(t, query, "created_at <=")
	assert.Equal(t, []any{from}, args)
}

func TestLedgerQuery_ProductoYLimite_PlaceholdersConsecutivos(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	query, args := ledgerQuery(from, to, "prod-1", 500)

	assert.Contains(t, query, "t.product_id = $3")
	assert.Contains(t, query, "LIMIT $4")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(query), "LIMIT $4"))
	assert.Equal(t, []any{from, to, "prod-1", 500}, args)
}

func TestLedgerQuery_SinFechasConProducto_ReindexaPlaceholders(t *testing.T) {
	query, args := ledgerQuery(time.Time{}, time.Time{}, "prod-1", 0)

	assert.Contains(t, query, "t.product_id = $1")
	assert.Equal(t, []any{"prod-1"}, args)
}
