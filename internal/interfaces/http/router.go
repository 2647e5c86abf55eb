package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-dashboard/internal/application/alerts"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/overview"
	"github.com/jhoicas/Inventario-dashboard/internal/application/transfer"
	"github.com/jhoicas/Inventario-dashboard/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OverviewUC  *overview.UseCase
	DashboardUC *dashboard.UseCase
	AlertsUC    *alerts.UseCase
	TransferUC  *transfer.UseCase
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	StockUC     *usecase.StockUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventory overview (lectura idempotente)
	inventoryHandler := NewInventoryHandler(deps.OverviewUC)
	api.Get("/inventory/overview", inventoryHandler.GetOverview)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dash := api.Group("/dashboard")
	dash.Get("/metrics", dashboardHandler.GetMetrics)
	dash.Get("/report", dashboardHandler.DownloadReport)

	// Alerts (listar regenera y persiste)
	alertHandler := NewAlertHandler(deps.AlertsUC)
	alertsGroup := api.Group("/alerts")
	alertsGroup.Get("/", alertHandler.List)
	alertsGroup.Post("/calculate", alertHandler.Recalculate)
	alertsGroup.Put("/:id", alertHandler.Update)

	// Transfers
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers := api.Group("/transfers")
	transfers.Get("/", transferHandler.List)
	transfers.Post("/", transferHandler.Create)
	transfers.Delete("/:id", transferHandler.Delete)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Warehouses
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses := api.Group("/warehouses")
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Stock
	stockHandler := NewStockHandler(deps.StockUC)
	stock := api.Group("/stock")
	stock.Get("/", stockHandler.List)
	stock.Post("/", stockHandler.Create)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Put("/:id", stockHandler.Update)
	stock.Delete("/:id", stockHandler.Delete)
}
