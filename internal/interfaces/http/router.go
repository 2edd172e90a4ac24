package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/admin"
	"github.com/invorya/stockroom-api/internal/application/analytics"
	"github.com/invorya/stockroom-api/internal/application/auth"
	"github.com/invorya/stockroom-api/internal/application/inventory"
	"github.com/invorya/stockroom-api/internal/application/notification"
	"github.com/invorya/stockroom-api/internal/application/reports"
	"github.com/invorya/stockroom-api/internal/application/usecase"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	CategoryUC     *usecase.CategoryUseCase
	SupplierUC     *usecase.SupplierUseCase
	ContactUC      *usecase.ContactUseCase
	RecordTx       *inventory.RecordTransactionUseCase
	ListTx         *inventory.ListTransactionsUseCase
	ReportUC       *reports.ReportUseCase
	ChartUC        *analytics.ChartUseCase
	NotificationUC *notification.UseCase
	PasscodeUC     *admin.PasscodeUseCase
	ActivityUC     *admin.ActivityUseCase
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth y contacto (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	contactHandler := NewContactHandler(deps.ContactUC)
	api.Post("/contact", contactHandler.Submit)

	// Rutas protegidas (Bearer token). El escaneo de stock bajo se dispara
	// al entrar a cualquiera de ellas, acotado por ventana en el use case.
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret),
		LowStockScanMiddleware(deps.NotificationUC, deps.Log),
	)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Ledger de movimientos
	transactions := protected.Group("/transactions")
	inventoryHandler := NewInventoryHandler(deps.RecordTx, deps.ListTx)
	transactions.Post("/", inventoryHandler.Record)
	transactions.Get("/", inventoryHandler.List)

	// Reportes
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/low-stock", reportHandler.LowStock)
	reportsGroup.Get("/low-stock/pdf", reportHandler.ExportLowStockPDF)
	reportsGroup.Get("/inventory", reportHandler.Inventory)
	reportsGroup.Get("/by-category", reportHandler.ByCategory)
	reportsGroup.Get("/by-supplier", reportHandler.BySupplier)
	reportsGroup.Get("/movements", reportHandler.Movements)
	reportsGroup.Get("/export", reportHandler.ExportCSV)

	// Charts del dashboard (?type=stock|category|stock_status|monthly_movements)
	chartHandler := NewChartHandler(deps.ChartUC)
	protected.Get("/charts", chartHandler.Data)

	// Notificaciones
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Put("/:id/read", notificationHandler.MarkRead)

	// Admin (passcodes, actividad, mensajes de contacto)
	adminGroup := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.PasscodeUC, deps.ActivityUC)
	adminGroup.Post("/passcodes", adminHandler.GeneratePasscodes)
	adminGroup.Get("/passcodes", adminHandler.ListPasscodes)
	adminGroup.Get("/activity", adminHandler.ListActivity)
	adminGroup.Get("/contact", contactHandler.List)
}
