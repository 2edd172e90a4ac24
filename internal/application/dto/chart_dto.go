package dto

// ChartResponse envoltorio común del API de charts: {success, data}.
// La forma de data depende del tipo de chart pedido.
type ChartResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ChartPoint par label/value para charts de barras y pie.
type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// MonthlyMovementsDTO series del chart de movimientos mensuales.
// labels en orden cronológico ASCENDENTE (la consulta lee descendente y el
// use case invierte).
type MonthlyMovementsDTO struct {
	Labels   []string `json:"labels"`
	StockIn  []int    `json:"stock_in"`
	StockOut []int    `json:"stock_out"`
}
