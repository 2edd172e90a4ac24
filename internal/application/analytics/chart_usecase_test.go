package analytics_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/internal/application/analytics"
	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/report"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/pkg/logger"
)

type fakeChartRepo struct {
	stock   []report.ProductStock
	monthly []repository.MonthlyMovementRow
	calls   int
}

func (f *fakeChartRepo) ActiveProductStock(context.Context) ([]report.ProductStock, error) {
	f.calls++
	return f.stock, nil
}
func (f *fakeChartRepo) TransactionsBetween(context.Context, time.Time, time.Time, string, int) ([]repository.LedgerRow, error) {
	return nil, nil
}
func (f *fakeChartRepo) MonthlyMovements(context.Context, int) ([]repository.MonthlyMovementRow, error) {
	return f.monthly, nil
}

// memCache caché en memoria para probar el cache-aside.
type memCache struct {
	vals map[string][]byte
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	return c.vals[key], nil
}
func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.vals[key] = value
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func stockFixture() []report.ProductStock {
	price := decimal.NewFromInt(1)
	return []report.ProductStock{
		{Name: "Agotado", CategoryName: "Ferretería", Quantity: 0, MinStockLevel: 5, Price: price},
		{Name: "Bajo", CategoryName: "Ferretería", Quantity: 3, MinStockLevel: 5, Price: price},
		{Name: "Sobrado", Quantity: 50, MinStockLevel: 5, Price: price},
	}
}

func TestData_TipoDesconocido(t *testing.T) {
	uc := analytics.NewChartUseCase(&fakeChartRepo{}, nil, testLogger())
	_, err := uc.Data(context.Background(), "velocity")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestData_StockOrdenaPorCantidad(t *testing.T) {
	uc := analytics.NewChartUseCase(&fakeChartRepo{stock: stockFixture()}, nil, testLogger())

	data, err := uc.Data(context.Background(), analytics.ChartStock)
	require.NoError(t, err)

	points := data.([]dto.ChartPoint)
	require.Len(t, points, 3)
	assert.Equal(t, dto.ChartPoint{Label: "Sobrado", Value: 50}, points[0])
	assert.Equal(t, dto.ChartPoint{Label: "Bajo", Value: 3}, points[1])
}

func TestData_CategoriaUsaPlaceholder(t *testing.T) {
	uc := analytics.NewChartUseCase(&fakeChartRepo{stock: stockFixture()}, nil, testLogger())

	data, err := uc.Data(context.Background(), analytics.ChartCategory)
	require.NoError(t, err)

	points := data.([]dto.ChartPoint)
	require.Len(t, points, 2)
	assert.Equal(t, dto.ChartPoint{Label: "Ferretería", Value: 2}, points[0])
	assert.Equal(t, dto.ChartPoint{Label: "No Category", Value: 1}, points[1])
}

func TestData_StockStatusSiempreTresPuntos(t *testing.T) {
	uc := analytics.NewChartUseCase(&fakeChartRepo{stock: stockFixture()}, nil, testLogger())

	data, err := uc.Data(context.Background(), analytics.ChartStockStatus)
	require.NoError(t, err)

	points := data.([]dto.ChartPoint)
	require.Len(t, points, 3)
	assert.Equal(t, []dto.ChartPoint{
		{Label: "In Stock", Value: 1},
		{Label: "Low Stock", Value: 1},
		{Label: "Out of Stock", Value: 1},
	}, points)

	// Sin productos, los tres puntos siguen presentes con cero.
	uc = analytics.NewChartUseCase(&fakeChartRepo{}, nil, testLogger())
	data, err = uc.Data(context.Background(), analytics.ChartStockStatus)
	require.NoError(t, err)
	for _, p := range data.([]dto.ChartPoint) {
		assert.Zero(t, p.Value)
	}
}

func TestData_MensualInvierteAOrdenAscendente(t *testing.T) {
	repo := &fakeChartRepo{monthly: []repository.MonthlyMovementRow{
		{Month: "2026-08", StockIn: 30, StockOut: 5},
		{Month: "2026-07", StockIn: 20, StockOut: 10},
		{Month: "2026-06", StockIn: 10, StockOut: 2},
	}}
	uc := analytics.NewChartUseCase(repo, nil, testLogger())

	data, err := uc.Data(context.Background(), analytics.ChartMonthlyMovements)
	require.NoError(t, err)

	m := data.(*dto.MonthlyMovementsDTO)
	assert.Equal(t, []string{"2026-06", "2026-07", "2026-08"}, m.Labels)
	assert.Equal(t, []int{10, 20, 30}, m.StockIn)
	assert.Equal(t, []int{2, 10, 5}, m.StockOut)
}

func TestData_CacheAside(t *testing.T) {
	repo := &fakeChartRepo{stock: stockFixture()}
	cache := &memCache{vals: map[string][]byte{}}
	uc := analytics.NewChartUseCase(repo, cache, testLogger())

	first, err := uc.Data(context.Background(), analytics.ChartStock)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)

	second, err := uc.Data(context.Background(), analytics.ChartStock)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "el hit de caché no vuelve a consultar")

	want, _ := json.Marshal(first)
	got, _ := json.Marshal(second)
	assert.JSONEq(t, string(want), string(got))
}
