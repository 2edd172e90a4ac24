// Package money formatea valores monetarios para pantalla y CSV.
// Los reportes emiten las celdas de moneda ya formateadas como "$#,##0.00"
// (texto, no número), idéntico al formato en pantalla.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Format devuelve el valor como "$#,##0.00": separador de miles con coma
// y siempre dos decimales. Los negativos llevan el signo antes del símbolo.
func Format(d decimal.Decimal) string {
	neg := d.IsNegative()
	f, _ := d.Abs().Round(2).Float64()
	s := printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
	if neg {
		return "-" + s
	}
	return s
}

// FormatFloat variante para valores que llegan como float64 (promedios ya redondeados).
func FormatFloat(f float64) string {
	return Format(decimal.NewFromFloat(f))
}
