package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/overview"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

// UseCase construye las métricas del dashboard y el reporte PDF.
//
// Lectura idempotente: carga las tres colecciones, calcula el resumen de
// inventario y agrega las métricas. Nunca escribe.
type UseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
	generator     ReportGenerator
}

// NewUseCase construye el caso de uso. generator puede ser nil si no se
// expone el reporte PDF.
func NewUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
	generator ReportGenerator,
) *UseCase {
	return &UseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
		generator:     generator,
	}
}

// GetMetrics carga las colecciones en paralelo y computa los agregados.
func (uc *UseCase) GetMetrics(ctx context.Context) (*dto.DashboardMetrics, error) {
	products, warehouses, stock, err := uc.loadCollections(ctx)
	if err != nil {
		return nil, err
	}
	ov := overview.Calculate(products, stock)
	return CalculateMetrics(products, warehouses, stock, ov), nil
}

// DownloadReport genera el PDF con el snapshot actual de inventario.
// Retorna los bytes del documento y el nombre de archivo sugerido.
func (uc *UseCase) DownloadReport(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	products, warehouses, stock, err := uc.loadCollections(ctx)
	if err != nil {
		return nil, "", err
	}
	ov := overview.Calculate(products, stock)
	metrics := CalculateMetrics(products, warehouses, stock, ov)

	now := time.Now()
	pdfBytes, err = uc.generator.GenerateInventoryReport(ctx, now, ov, metrics)
	if err != nil {
		return nil, "", fmt.Errorf("dashboard: generar reporte: %w", err)
	}
	filename = fmt.Sprintf("inventory-report-%s.pdf", now.Format("2006-01-02"))
	return pdfBytes, filename, nil
}

// loadCollections lee productos, bodegas y stock en tres goroutines.
func (uc *UseCase) loadCollections(ctx context.Context) ([]entity.Product, []entity.Warehouse, []entity.StockItem, error) {
	type productsResult struct {
		items []entity.Product
		err   error
	}
	type warehousesResult struct {
		items []entity.Warehouse
		err   error
	}
	type stockResult struct {
		items []entity.StockItem
		err   error
	}

	productsCh := make(chan productsResult, 1)
	warehousesCh := make(chan warehousesResult, 1)
	stockCh := make(chan stockResult, 1)

	go func() {
		items, err := uc.productRepo.LoadAll()
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := uc.warehouseRepo.LoadAll()
		warehousesCh <- warehousesResult{items, err}
	}()
	go func() {
		items, err := uc.stockRepo.LoadAll()
		stockCh <- stockResult{items, err}
	}()

	products := <-productsCh
	warehouses := <-warehousesCh
	stock := <-stockCh

	if products.err != nil {
		return nil, nil, nil, fmt.Errorf("dashboard: cargar productos: %w", products.err)
	}
	if warehouses.err != nil {
		return nil, nil, nil, fmt.Errorf("dashboard: cargar bodegas: %w", warehouses.err)
	}
	if stock.err != nil {
		return nil, nil, nil, fmt.Errorf("dashboard: cargar stock: %w", stock.err)
	}
	return products.items, warehouses.items, stock.items, nil
}
