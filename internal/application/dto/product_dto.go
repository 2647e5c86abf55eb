package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU          string          `json:"sku" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Category     string          `json:"category" validate:"required"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	ReorderPoint int             `json:"reorderPoint" validate:"min=0"`
}

// UpdateProductRequest body para PUT /api/products/:id (actualización parcial).
type UpdateProductRequest struct {
	SKU          *string          `json:"sku,omitempty"`
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	UnitCost     *decimal.Decimal `json:"unitCost,omitempty"`
	ReorderPoint *int             `json:"reorderPoint,omitempty" validate:"omitempty,min=0"`
}
