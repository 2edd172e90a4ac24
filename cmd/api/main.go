package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/invorya/stockroom-api/internal/application/admin"
	"github.com/invorya/stockroom-api/internal/application/analytics"
	"github.com/invorya/stockroom-api/internal/application/auth"
	"github.com/invorya/stockroom-api/internal/application/inventory"
	"github.com/invorya/stockroom-api/internal/application/notification"
	"github.com/invorya/stockroom-api/internal/application/reports"
	"github.com/invorya/stockroom-api/internal/application/usecase"
	infrapdf "github.com/invorya/stockroom-api/internal/infrastructure/pdf"
	"github.com/invorya/stockroom-api/internal/infrastructure/postgres"
	"github.com/invorya/stockroom-api/internal/infrastructure/rediscache"
	httpRouter "github.com/invorya/stockroom-api/internal/interfaces/http"
	"github.com/invorya/stockroom-api/pkg/config"
	"github.com/invorya/stockroom-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Redis es opcional: sin Addr la app corre sin cache-aside ni throttle
	// distribuido.
	var cache *rediscache.Cache
	if cfg.Redis.Enabled() {
		cache, err = rediscache.New(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer cache.Close()
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché Redis habilitada")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	passcodeRepo := postgres.NewPasscodeRepository(pool)
	resetRepo := postgres.NewPasswordResetRepository(pool)
	contactRepo := postgres.NewContactMessageRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, passcodeRepo, resetRepo, activityRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.Env)

	productUC := usecase.NewProductUseCase(productRepo, activityRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	contactUC := usecase.NewContactUseCase(contactRepo)

	recordTxUC := inventory.NewRecordTransactionUseCase(txRunner)
	listTxUC := inventory.NewListTransactionsUseCase(txRepo, cfg.Report.ScreenRowLimit)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewReportUseCase(reportRepo, activityRepo, pdfGenerator, reports.Caps{
		ScreenRowLimit:    cfg.Report.ScreenRowLimit,
		ActivityExportCap: cfg.Report.ActivityExportCap,
	})

	// Sin Redis los interfaces quedan en nil de verdad, no en un *Cache nil
	// envuelto en interface.
	var chartCache analytics.ChartCache
	var notifCache notification.Cache
	var notifThrottle notification.Throttle
	if cache != nil {
		chartCache = cache
		notifCache = cache
		notifThrottle = cache
	}

	chartUC := analytics.NewChartUseCase(reportRepo, chartCache, log)
	notificationUC := notification.NewUseCase(
		notifRepo, reportRepo, notifCache, notifThrottle, log,
		cfg.Report.NotificationLimit,
		time.Duration(cfg.Report.LowStockScanEvery)*time.Second,
	)

	passcodeUC := admin.NewPasscodeUseCase(passcodeRepo, activityRepo)
	activityUC := admin.NewActivityUseCase(activityRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stockroom API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		CategoryUC:     categoryUC,
		SupplierUC:     supplierUC,
		ContactUC:      contactUC,
		RecordTx:       recordTxUC,
		ListTx:         listTxUC,
		ReportUC:       reportUC,
		ChartUC:        chartUC,
		NotificationUC: notificationUC,
		PasscodeUC:     passcodeUC,
		ActivityUC:     activityUC,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
