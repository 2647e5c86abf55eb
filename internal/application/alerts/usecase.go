// Package alerts deriva y administra las alertas de salud de stock.
//
// La generación es de dos fases: Compute es pura (productos + stock →
// candidatas) y List fusiona con las alertas persistidas y sobrescribe la
// colección antes de responder. Listar alertas NO es libre de efectos: cada
// lectura recalcula y persiste el set activo.
package alerts

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

// idealStockFactor múltiplo del punto de reorden considerado stock ideal al
// sugerir cantidad de pedido.
const idealStockFactor = 1.5

// Runner serializa los ciclos leer-modificar-escribir sobre el storage de
// archivos. Sin él, dos regeneraciones concurrentes se pisarían entre sí.
type Runner interface {
	Run(fn func() error) error
}

// UseCase genera, fusiona y actualiza alertas.
type UseCase struct {
	productRepo   repository.ProductRepository
	stockRepo     repository.StockRepository
	warehouseRepo repository.WarehouseRepository
	alertRepo     repository.AlertRepository
	runner        Runner
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	warehouseRepo repository.WarehouseRepository,
	alertRepo repository.AlertRepository,
	runner Runner,
) *UseCase {
	return &UseCase{
		productRepo:   productRepo,
		stockRepo:     stockRepo,
		warehouseRepo: warehouseRepo,
		alertRepo:     alertRepo,
		runner:        runner,
	}
}

// Compute deriva las alertas candidatas del estado actual de stock. Pura.
//
// Umbrales (distintos de los del resumen de inventario, divergencia heredada
// que se preserva a propósito): <50 Critical, <100 Low, <=150 Adequate,
// >150 Overstocked. Adequate se descarta: no genera alerta.
func Compute(products []entity.Product, stock []entity.StockItem, warehouses []entity.Warehouse) []entity.Alert {
	warehouseName := make(map[entity.ID]string, len(warehouses))
	for _, w := range warehouses {
		warehouseName[w.ID] = w.Name
	}

	now := time.Now().UTC()
	alerts := make([]entity.Alert, 0)
	for _, p := range products {
		totalStock := 0
		rows := make([]entity.StockItem, 0)
		for _, s := range stock {
			if s.ProductID == p.ID {
				totalStock += s.Quantity
				rows = append(rows, s)
			}
		}
		percent := float64(totalStock) / float64(p.ReorderPoint) * 100

		level := classifyAlert(percent)
		if level == entity.AlertLevelAdequate {
			continue
		}

		// Cantidad sugerida: llevar el stock al ideal (reorden × 1.5).
		// Overstocked no necesita pedido.
		recommended := 0
		if level != entity.AlertLevelOverstocked {
			recommended = int(math.Ceil(float64(p.ReorderPoint)*idealStockFactor - float64(totalStock)))
			if recommended < 0 {
				recommended = 0
			}
		}

		warehouseDetails := make([]entity.AlertWarehouse, 0, len(rows))
		for _, s := range rows {
			name, ok := warehouseName[s.WarehouseID]
			if !ok {
				name = fmt.Sprintf("Warehouse %s", s.WarehouseID)
			}
			warehouseDetails = append(warehouseDetails, entity.AlertWarehouse{
				ID:    s.WarehouseID,
				Name:  name,
				Stock: s.Quantity,
			})
		}

		alerts = append(alerts, entity.Alert{
			ID:                       entity.ID(uuid.New().String()),
			ProductID:                p.ID,
			ProductName:              p.Name,
			ProductSKU:               p.SKU,
			TotalStock:               totalStock,
			ReorderPoint:             p.ReorderPoint,
			Level:                    level,
			Status:                   entity.AlertStatusOpen,
			PercentOfReorder:         roundPercent(percent),
			RecommendedOrderQuantity: recommended,
			Warehouses:               warehouseDetails,
			CreatedAt:                now,
		})
	}
	return alerts
}

// classifyAlert aplica los umbrales del módulo de alertas en orden fijo.
// La rama final es Overstocked, no Adequate: NaN (reorden 0 sin stock) no
// cumple ninguna comparación y termina aquí, al revés que en el resumen.
func classifyAlert(percent float64) string {
	switch {
	case percent < 50:
		return entity.AlertLevelCritical
	case percent < 100:
		return entity.AlertLevelLow
	case percent <= 150:
		return entity.AlertLevelAdequate
	default:
		return entity.AlertLevelOverstocked
	}
}

// roundPercent redondea al entero más cercano. NaN/Inf (punto de reorden en 0)
// se reportan como 0 para no romper la serialización.
func roundPercent(percent float64) int {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return 0
	}
	return int(math.Round(percent))
}

// Merge fusiona las alertas recién calculadas con las persistidas.
//
// Si ya existe una alerta no-Resolved para el mismo producto se conservan su
// id, status, notas y timestamps y se sobrescriben los campos derivados del
// stock. Una alerta Resolved no se reutiliza: la condición reaparecida genera
// un registro nuevo en Open y el historial resuelto se descarta.
func Merge(fresh, existing []entity.Alert) []entity.Alert {
	byProduct := make(map[entity.ID]entity.Alert, len(existing))
	for _, a := range existing {
		byProduct[a.ProductID] = a
	}

	merged := make([]entity.Alert, 0, len(fresh))
	for _, newAlert := range fresh {
		prev, ok := byProduct[newAlert.ProductID]
		if ok && prev.Status != entity.AlertStatusResolved {
			prev.TotalStock = newAlert.TotalStock
			prev.PercentOfReorder = newAlert.PercentOfReorder
			prev.RecommendedOrderQuantity = newAlert.RecommendedOrderQuantity
			prev.Level = newAlert.Level
			prev.Warehouses = newAlert.Warehouses
			merged = append(merged, prev)
			continue
		}
		merged = append(merged, newAlert)
	}
	return merged
}

// List regenera las alertas, las fusiona con las persistidas, sobrescribe la
// colección y devuelve el set filtrado por status y/o level ("" o "All" = sin
// filtro). El filtro se aplica después de persistir.
func (uc *UseCase) List(ctx context.Context, status, level string) ([]entity.Alert, error) {
	var merged []entity.Alert
	err := uc.runner.Run(func() error {
		fresh, existing, err := uc.computeAndLoad()
		if err != nil {
			return err
		}
		merged = Merge(fresh, existing)
		return uc.alertRepo.SaveAll(merged)
	})
	if err != nil {
		return nil, err
	}

	filtered := merged
	if status != "" && status != "All" {
		filtered = filterAlerts(filtered, func(a entity.Alert) bool { return a.Status == status })
	}
	if level != "" && level != "All" {
		filtered = filterAlerts(filtered, func(a entity.Alert) bool { return a.Level == level })
	}
	return filtered, nil
}

// Recalculate recomputa las alertas desde cero y sobrescribe la colección SIN
// fusionar: descarta status y notas previos. Es la operación de "reset".
func (uc *UseCase) Recalculate(ctx context.Context) ([]entity.Alert, error) {
	var fresh []entity.Alert
	err := uc.runner.Run(func() error {
		var err error
		fresh, _, err = uc.computeAndLoad()
		if err != nil {
			return err
		}
		return uc.alertRepo.SaveAll(fresh)
	})
	if err != nil {
		return nil, err
	}
	return fresh, nil
}

// Update cambia status y notas de una alerta, estampando acknowledgedAt o
// resolvedAt según el status asignado. Notas vacías conservan las anteriores.
func (uc *UseCase) Update(ctx context.Context, id entity.ID, status, notes string) (*entity.Alert, error) {
	if id == "" || status == "" {
		return nil, domain.NewValidationError("Missing required fields: id, status")
	}
	var updated *entity.Alert
	err := uc.runner.Run(func() error {
		alerts, err := uc.alertRepo.LoadAll()
		if err != nil {
			return fmt.Errorf("alerts: cargar alertas: %w", err)
		}
		idx := -1
		for i := range alerts {
			if alerts[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrNotFound
		}

		now := time.Now().UTC()
		alerts[idx].Status = status
		if notes != "" {
			alerts[idx].Notes = notes
		}
		switch status {
		case entity.AlertStatusAcknowledged:
			alerts[idx].AcknowledgedAt = &now
		case entity.AlertStatusResolved:
			alerts[idx].ResolvedAt = &now
		}

		if err := uc.alertRepo.SaveAll(alerts); err != nil {
			return err
		}
		updated = &alerts[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// computeAndLoad carga colecciones, computa alertas frescas y trae las persistidas.
func (uc *UseCase) computeAndLoad() (fresh, existing []entity.Alert, err error) {
	products, err := uc.productRepo.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("alerts: cargar productos: %w", err)
	}
	stock, err := uc.stockRepo.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("alerts: cargar stock: %w", err)
	}
	warehouses, err := uc.warehouseRepo.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("alerts: cargar bodegas: %w", err)
	}
	existing, err = uc.alertRepo.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("alerts: cargar alertas: %w", err)
	}
	return Compute(products, stock, warehouses), existing, nil
}

func filterAlerts(alerts []entity.Alert, keep func(entity.Alert) bool) []entity.Alert {
	out := make([]entity.Alert, 0, len(alerts))
	for _, a := range alerts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
