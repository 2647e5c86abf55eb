package dto

// CreateStockRequest body para POST /api/stock.
// No se valida que el par (productId, warehouseId) sea único ni que las
// referencias existan: el storage tolera duplicados y huérfanos.
type CreateStockRequest struct {
	ProductID   string `json:"productId" validate:"required"`
	WarehouseID string `json:"warehouseId" validate:"required"`
	Quantity    int    `json:"quantity" validate:"min=0"`
}

// UpdateStockRequest body para PUT /api/stock/:id (actualización parcial).
// A diferencia de una transferencia, la edición manual puede dejar la
// cantidad en 0 sin eliminar la fila.
type UpdateStockRequest struct {
	ProductID   *string `json:"productId,omitempty"`
	WarehouseID *string `json:"warehouseId,omitempty"`
	Quantity    *int    `json:"quantity,omitempty" validate:"omitempty,min=0"`
}
