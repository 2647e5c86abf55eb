package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// ReorderPoint es la cantidad base considerada "stock completo"; la salud del
// stock se mide como porcentaje sobre ese punto de reorden.
type Product struct {
	ID           ID              `json:"id"`
	SKU          string          `json:"sku"` // único por convención, no lo exige el storage
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	ReorderPoint int             `json:"reorderPoint"`
}
