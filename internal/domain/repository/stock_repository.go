package repository

import "github.com/jhoicas/Inventario-dashboard/internal/domain/entity"

// StockRepository acceso a la colección completa de filas de stock.
type StockRepository interface {
	LoadAll() ([]entity.StockItem, error)
	SaveAll(stock []entity.StockItem) error
}
