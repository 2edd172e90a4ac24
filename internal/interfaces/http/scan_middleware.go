package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/notification"
	"github.com/invorya/stockroom-api/pkg/logger"
)

const scanTimeout = 5 * time.Second

// LowStockScanMiddleware dispara el escaneo de stock bajo al entrar a rutas
// protegidas. Corre en background con su propio contexto (el de la petición
// muere al responder) y nunca afecta la respuesta: el use case ya acota la
// frecuencia, aquí solo se registra el fallo si lo hay.
func LowStockScanMiddleware(uc *notification.UseCase, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
			defer cancel()
			if err := uc.ScanLowStock(ctx); err != nil {
				log.Warn().Err(err).Msg("escaneo de stock bajo")
			}
		}()
		return c.Next()
	}
}
