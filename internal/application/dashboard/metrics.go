// Package dashboard agrega las métricas transversales del inventario que
// consumen las gráficas del dashboard, y genera el reporte PDF del snapshot.
package dashboard

import (
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/overview"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Colores fijos del histograma de estados (horizontal bar chart).
const (
	colorCritical    = "#d32f2f"
	colorLowStock    = "#ff9800"
	colorAdequate    = "#4caf50"
	colorOverstocked = "#0288d1"
)

// CalculateMetrics computa los agregados del dashboard a partir de las
// colecciones completas y del resumen de inventario ya calculado.
// Función pura; listas vacías producen agregados vacíos, nunca error.
//
// Las filas de stock cuyo producto ya no existe aportan valor 0 (tolerancia
// deliberada a referencias huérfanas, no un error).
func CalculateMetrics(
	products []entity.Product,
	warehouses []entity.Warehouse,
	stock []entity.StockItem,
	inventoryOverview []dto.InventoryOverviewItem,
) *dto.DashboardMetrics {
	productByID := make(map[entity.ID]entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	// Valor total del inventario: quantity × unitCost de cada fila de stock.
	totalValue := decimal.Zero
	for _, s := range stock {
		if p, ok := productByID[s.ProductID]; ok {
			totalValue = totalValue.Add(p.UnitCost.Mul(decimal.NewFromInt(int64(s.Quantity))))
		}
	}

	// Productos bajo stock: filas del resumen en Critical o Low Stock.
	lowStockCount := 0
	for _, item := range inventoryOverview {
		if item.StatusColor == overview.ColorError || item.StatusColor == overview.ColorWarning {
			lowStockCount++
		}
	}

	// Valor por bodega (bar chart), etiquetado por código de bodega.
	warehouseData := make([]dto.ChartDataItem, 0, len(warehouses))
	for _, w := range warehouses {
		value := decimal.Zero
		for _, s := range stock {
			if s.WarehouseID != w.ID {
				continue
			}
			if p, ok := productByID[s.ProductID]; ok {
				value = value.Add(p.UnitCost.Mul(decimal.NewFromInt(int64(s.Quantity))))
			}
		}
		warehouseData = append(warehouseData, dto.ChartDataItem{
			Name:     w.Code,
			Value:    value,
			FullName: w.Name,
		})
	}

	// Cantidad por categoría (pie chart), en orden de primera aparición.
	// Las categorías con cantidad 0 se omiten para no ensuciar el gráfico.
	categoryData := make([]dto.ChartDataItem, 0)
	categoryIndex := make(map[string]int)
	for _, p := range products {
		total := 0
		for _, s := range stock {
			if s.ProductID == p.ID {
				total += s.Quantity
			}
		}
		if i, ok := categoryIndex[p.Category]; ok {
			categoryData[i].Value = categoryData[i].Value.Add(decimal.NewFromInt(int64(total)))
			continue
		}
		categoryIndex[p.Category] = len(categoryData)
		categoryData = append(categoryData, dto.ChartDataItem{
			Name:  p.Category,
			Value: decimal.NewFromInt(int64(total)),
		})
	}
	filtered := categoryData[:0]
	for _, item := range categoryData {
		if item.Value.GreaterThan(decimal.Zero) {
			filtered = append(filtered, item)
		}
	}
	categoryData = filtered

	// Histograma de estados: cuatro buckets fijos, se omiten los vacíos.
	statusCount := func(color string) int {
		n := 0
		for _, item := range inventoryOverview {
			if item.StatusColor == color {
				n++
			}
		}
		return n
	}
	statusBuckets := []dto.ChartDataItem{
		{Name: overview.StatusCritical, Value: decimal.NewFromInt(int64(statusCount(overview.ColorError))), Color: colorCritical},
		{Name: overview.StatusLowStock, Value: decimal.NewFromInt(int64(statusCount(overview.ColorWarning))), Color: colorLowStock},
		{Name: overview.StatusAdequate, Value: decimal.NewFromInt(int64(statusCount(overview.ColorSuccess))), Color: colorAdequate},
		{Name: overview.StatusOverstocked, Value: decimal.NewFromInt(int64(statusCount(overview.ColorInfo))), Color: colorOverstocked},
	}
	stockStatusData := make([]dto.ChartDataItem, 0, len(statusBuckets))
	for _, b := range statusBuckets {
		if b.Value.GreaterThan(decimal.Zero) {
			stockStatusData = append(stockStatusData, b)
		}
	}

	return &dto.DashboardMetrics{
		TotalValue:      totalValue,
		LowStockCount:   lowStockCount,
		WarehouseData:   warehouseData,
		CategoryData:    categoryData,
		StockStatusData: stockStatusData,
	}
}
