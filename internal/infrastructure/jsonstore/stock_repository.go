package jsonstore

import (
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre stock.json.
type StockRepo struct {
	s *Store
}

// NewStockRepository construye el adaptador.
func NewStockRepository(s *Store) *StockRepo { return &StockRepo{s: s} }

// LoadAll carga la colección completa de filas de stock.
func (r *StockRepo) LoadAll() ([]entity.StockItem, error) {
	return load[entity.StockItem](r.s, stockFile)
}

// SaveAll sobrescribe la colección completa de filas de stock.
func (r *StockRepo) SaveAll(stock []entity.StockItem) error {
	return save(r.s, stockFile, stock)
}
