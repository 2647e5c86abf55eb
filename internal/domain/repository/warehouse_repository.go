package repository

import "github.com/jhoicas/Inventario-dashboard/internal/domain/entity"

// WarehouseRepository acceso a la colección completa de bodegas.
type WarehouseRepository interface {
	LoadAll() ([]entity.Warehouse, error)
	SaveAll(warehouses []entity.Warehouse) error
}
