package dto

import "github.com/shopspring/decimal"

// ChartDataItem punto de datos genérico para los gráficos del dashboard.
// Value es valor monetario en el desglose por bodega y un conteo/cantidad en
// los demás; FullName y Color solo se emiten donde aplican.
type ChartDataItem struct {
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	FullName string          `json:"fullName,omitempty"`
	Color    string          `json:"color,omitempty"`
}

// DashboardMetrics respuesta de GET /api/dashboard/metrics: los KPIs y las
// series que consumen las gráficas del dashboard.
type DashboardMetrics struct {
	TotalValue      decimal.Decimal `json:"totalValue"`      // suma de quantity × unitCost
	LowStockCount   int             `json:"lowStockCount"`   // filas Critical + Low Stock
	WarehouseData   []ChartDataItem `json:"warehouseData"`   // valor por bodega (bar chart)
	CategoryData    []ChartDataItem `json:"categoryData"`    // cantidad por categoría (pie chart)
	StockStatusData []ChartDataItem `json:"stockStatusData"` // histograma de estados
}
