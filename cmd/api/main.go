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
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"

	"github.com/jhoicas/Inventario-dashboard/internal/application/alerts"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/overview"
	"github.com/jhoicas/Inventario-dashboard/internal/application/transfer"
	"github.com/jhoicas/Inventario-dashboard/internal/application/usecase"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/jsonstore"
	infrapdf "github.com/jhoicas/Inventario-dashboard/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Inventario-dashboard/internal/interfaces/http"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Data.Dir).
		Msg("iniciando aplicación")

	// Los archivos de datos guardan costos como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true

	store, err := jsonstore.New(afero.NewOsFs(), cfg.Data.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento JSON")
	}

	productRepo := jsonstore.NewProductRepository(store)
	warehouseRepo := jsonstore.NewWarehouseRepository(store)
	stockRepo := jsonstore.NewStockRepository(store)
	transferRepo := jsonstore.NewTransferRepository(store)
	alertRepo := jsonstore.NewAlertRepository(store)

	reportGenerator := infrapdf.NewMarotoReportGenerator()

	overviewUC := overview.NewUseCase(productRepo, stockRepo)
	dashboardUC := dashboard.NewUseCase(productRepo, warehouseRepo, stockRepo, reportGenerator)
	alertsUC := alerts.NewUseCase(productRepo, stockRepo, warehouseRepo, alertRepo, store)
	transferUC := transfer.NewUseCase(stockRepo, transferRepo, store)
	productUC := usecase.NewProductUseCase(productRepo, store)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, store)
	stockUC := usecase.NewStockUseCase(stockRepo, store)

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
		Title:    "Inventario Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OverviewUC:  overviewUC,
		DashboardUC: dashboardUC,
		AlertsUC:    alertsUC,
		TransferUC:  transferUC,
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		StockUC:     stockUC,
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
