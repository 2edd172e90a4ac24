// Package analytics casos de uso de los charts del dashboard.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/report"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/pkg/logger"
)

// Tipos de chart que sirve GET /api/charts/:type.
const (
	ChartStock            = "stock"
	ChartCategory         = "category"
	ChartStockStatus      = "stock_status"
	ChartMonthlyMovements = "monthly_movements"
)

const (
	topProductsLimit = 10
	monthlyWindow    = 6
	cacheTTL         = 60 * time.Second
)

// ChartCache puerto de caché para las series ya calculadas (cache-aside).
// Get devuelve (nil, nil) en miss; los fallos de caché nunca rompen la
// petición, solo se loguean.
type ChartCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ChartUseCase calcula las series del dashboard a partir del repositorio de
// reportes, con caché opcional (cache == nil la desactiva).
type ChartUseCase struct {
	reportRepo repository.ReportRepository
	cache      ChartCache
	log        *logger.Logger
}

// NewChartUseCase construye el caso de uso. cache puede ser nil.
func NewChartUseCase(reportRepo repository.ReportRepository, cache ChartCache, log *logger.Logger) *ChartUseCase {
	return &ChartUseCase{reportRepo: reportRepo, cache: cache, log: log}
}

// Data devuelve la serie del chart pedido, lista para el envoltorio
// {success, data}. Tipos desconocidos devuelven ErrInvalidInput.
func (uc *ChartUseCase) Data(ctx context.Context, chartType string) (interface{}, error) {
	switch chartType {
	case ChartStock, ChartCategory, ChartStockStatus, ChartMonthlyMovements:
	default:
		return nil, domain.ErrInvalidInput
	}

	key := "chart:" + chartType
	if cached := uc.cacheGet(ctx, key); cached != nil {
		return json.RawMessage(cached), nil
	}

	var (
		data interface{}
		err  error
	)
	switch chartType {
	case ChartStock:
		data, err = uc.topProducts(ctx)
	case ChartCategory:
		data, err = uc.categoryCounts(ctx)
	case ChartStockStatus:
		data, err = uc.stockStatus(ctx)
	case ChartMonthlyMovements:
		data, err = uc.monthlyMovements(ctx)
	}
	if err != nil {
		return nil, err
	}
	uc.cacheSet(ctx, key, data)
	return data, nil
}

// topProducts los productos activos con más existencias, cantidad descendente
// y nombre como desempate.
func (uc *ChartUseCase) topProducts(ctx context.Context) ([]dto.ChartPoint, error) {
	rows, err := uc.reportRepo.ActiveProductStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("chart stock: %w", err)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Quantity != rows[j].Quantity {
			return rows[i].Quantity > rows[j].Quantity
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > topProductsLimit {
		rows = rows[:topProductsLimit]
	}
	out := make([]dto.ChartPoint, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.ChartPoint{Label: p.Name, Value: p.Quantity})
	}
	return out, nil
}

// categoryCounts número de productos activos por categoría; los productos sin
// categoría cuentan bajo el placeholder.
func (uc *ChartUseCase) categoryCounts(ctx context.Context) ([]dto.ChartPoint, error) {
	rows, err := uc.reportRepo.ActiveProductStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("chart category: %w", err)
	}
	counts := map[string]int{}
	for _, p := range rows {
		label := p.CategoryName
		if label == "" {
			label = report.PlaceholderCategory
		}
		counts[label]++
	}
	out := make([]dto.ChartPoint, 0, len(counts))
	for label, n := range counts {
		out = append(out, dto.ChartPoint{Label: label, Value: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Label < out[j].Label
	})
	return out, nil
}

// stockStatus exactamente tres puntos, siempre en este orden, aunque alguno
// valga cero.
func (uc *ChartUseCase) stockStatus(ctx context.Context) ([]dto.ChartPoint, error) {
	rows, err := uc.reportRepo.ActiveProductStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("chart stock_status: %w", err)
	}
	var inStock, low, out int
	for _, p := range rows {
		switch report.Classify(p.Quantity, p.MinStockLevel) {
		case report.UrgencyInStock:
			inStock++
		case report.UrgencyCritical:
			out++
		default: // Low y Very Low cuentan como "Low Stock"
			low++
		}
	}
	return []dto.ChartPoint{
		{Label: "In Stock", Value: inStock},
		{Label: "Low Stock", Value: low},
		{Label: "Out of Stock", Value: out},
	}, nil
}

// monthlyMovements últimos seis meses de entradas/salidas. La consulta llega
// en orden descendente por mes y aquí se invierte a cronológico ascendente.
func (uc *ChartUseCase) monthlyMovements(ctx context.Context) (*dto.MonthlyMovementsDTO, error) {
	rows, err := uc.reportRepo.MonthlyMovements(ctx, monthlyWindow)
	if err != nil {
		return nil, fmt.Errorf("chart monthly_movements: %w", err)
	}
	out := &dto.MonthlyMovementsDTO{
		Labels:   make([]string, len(rows)),
		StockIn:  make([]int, len(rows)),
		StockOut: make([]int, len(rows)),
	}
	for i, r := range rows {
		j := len(rows) - 1 - i
		out.Labels[j] = r.Month
		out.StockIn[j] = r.StockIn
		out.StockOut[j] = r.StockOut
	}
	return out, nil
}

func (uc *ChartUseCase) cacheGet(ctx context.Context, key string) []byte {
	if uc.cache == nil {
		return nil
	}
	b, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("caché de charts no disponible")
		return nil
	}
	return b
}

func (uc *ChartUseCase) cacheSet(ctx context.Context, key string, data interface{}) {
	if uc.cache == nil {
		return
	}
	b, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, b, cacheTTL); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear el chart")
	}
}
