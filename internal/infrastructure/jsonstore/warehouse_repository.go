package jsonstore

import (
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre warehouses.json.
type WarehouseRepo struct {
	s *Store
}

// NewWarehouseRepository construye el adaptador.
func NewWarehouseRepository(s *Store) *WarehouseRepo { return &WarehouseRepo{s: s} }

// LoadAll carga la colección completa de bodegas.
func (r *WarehouseRepo) LoadAll() ([]entity.Warehouse, error) {
	return load[entity.Warehouse](r.s, warehousesFile)
}

// SaveAll sobrescribe la colección completa de bodegas.
func (r *WarehouseRepo) SaveAll(warehouses []entity.Warehouse) error {
	return save(r.s, warehousesFile, warehouses)
}
