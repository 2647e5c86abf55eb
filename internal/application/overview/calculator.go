// Package overview calcula el resumen de inventario por producto: total de
// stock agregado entre bodegas y clasificación de salud según el porcentaje
// sobre el punto de reorden.
package overview

import (
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// Estados de salud del stock en el resumen de inventario.
// Los umbrales difieren de los del módulo de alertas (ver package alerts).
const (
	StatusCritical    = "Critical"
	StatusLowStock    = "Low Stock"
	StatusAdequate    = "Adequate"
	StatusOverstocked = "Overstocked"
)

// Colores de estado que espera el frontend.
const (
	ColorError   = "error"   // Critical
	ColorWarning = "warning" // Low Stock
	ColorSuccess = "success" // Adequate
	ColorInfo    = "info"    // Overstocked
)

// Calculate produce una fila de resumen por producto, en el mismo orden del
// listado de productos. Función pura: sin efectos, determinista.
//
// Con ReorderPoint en 0 la división produce NaN (sin stock) o +Inf (con
// stock); se propagan tal cual a la clasificación: NaN no cumple ninguna
// comparación y cae en Adequate, +Inf cumple >200 y cae en Overstocked.
func Calculate(products []entity.Product, stock []entity.StockItem) []dto.InventoryOverviewItem {
	items := make([]dto.InventoryOverviewItem, 0, len(products))
	for _, p := range products {
		total := 0
		for _, s := range stock {
			if s.ProductID == p.ID {
				total += s.Quantity
			}
		}
		percent := float64(total) / float64(p.ReorderPoint) * 100

		status, color := classify(percent)

		items = append(items, dto.InventoryOverviewItem{
			ID:               p.ID,
			SKU:              p.SKU,
			Name:             p.Name,
			Category:         p.Category,
			UnitCost:         p.UnitCost,
			ReorderPoint:     p.ReorderPoint,
			TotalQuantity:    total,
			Status:           status,
			StatusColor:      color,
			PercentOfReorder: dto.Percent(percent),
		})
	}
	return items
}

// classify aplica los umbrales del resumen en orden fijo (gana el primero):
// <20 Critical, <100 Low Stock, >200 Overstocked, resto Adequate [100, 200].
func classify(percent float64) (status, color string) {
	switch {
	case percent < 20:
		return StatusCritical, ColorError
	case percent < 100:
		return StatusLowStock, ColorWarning
	case percent > 200:
		return StatusOverstocked, ColorInfo
	default:
		return StatusAdequate, ColorSuccess
	}
}
