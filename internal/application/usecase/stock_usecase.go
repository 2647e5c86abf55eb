package usecase

import (
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

// StockUseCase CRUD de filas de stock (ediciones manuales).
// A diferencia del procesador de transferencias, una edición manual puede
// dejar la cantidad en 0 sin eliminar la fila.
type StockUseCase struct {
	repo   repository.StockRepository
	runner Runner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository, runner Runner) *StockUseCase {
	return &StockUseCase{repo: repo, runner: runner}
}

// List devuelve la colección completa.
func (uc *StockUseCase) List() ([]entity.StockItem, error) {
	return uc.repo.LoadAll()
}

// GetByID obtiene una fila de stock por id; nil si no existe.
func (uc *StockUseCase) GetByID(id entity.ID) (*entity.StockItem, error) {
	stock, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range stock {
		if stock[i].ID == id {
			return &stock[i], nil
		}
	}
	return nil, nil
}

// Create agrega una fila de stock con id numérico consecutivo.
func (uc *StockUseCase) Create(in dto.CreateStockRequest) (*entity.StockItem, error) {
	var created *entity.StockItem
	err := uc.runner.Run(func() error {
		stock, err := uc.repo.LoadAll()
		if err != nil {
			return fmt.Errorf("stock: cargar: %w", err)
		}
		ids := make([]entity.ID, 0, len(stock))
		for _, s := range stock {
			ids = append(ids, s.ID)
		}
		s := entity.StockItem{
			ID:          entity.NextID(ids),
			ProductID:   entity.ID(in.ProductID),
			WarehouseID: entity.ID(in.WarehouseID),
			Quantity:    in.Quantity,
		}
		stock = append(stock, s)
		if err := uc.repo.SaveAll(stock); err != nil {
			return err
		}
		created = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update aplica una actualización parcial; el id no es modificable.
func (uc *StockUseCase) Update(id entity.ID, in dto.UpdateStockRequest) (*entity.StockItem, error) {
	var updated *entity.StockItem
	err := uc.runner.Run(func() error {
		stock, err := uc.repo.LoadAll()
		if err != nil {
			return fmt.Errorf("stock: cargar: %w", err)
		}
		idx := -1
		for i := range stock {
			if stock[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrNotFound
		}
		if in.ProductID != nil {
			stock[idx].ProductID = entity.ID(*in.ProductID)
		}
		if in.WarehouseID != nil {
			stock[idx].WarehouseID = entity.ID(*in.WarehouseID)
		}
		if in.Quantity != nil {
			stock[idx].Quantity = *in.Quantity
		}
		if err := uc.repo.SaveAll(stock); err != nil {
			return err
		}
		updated = &stock[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete elimina la fila de stock.
func (uc *StockUseCase) Delete(id entity.ID) error {
	return uc.runner.Run(func() error {
		stock, err := uc.repo.LoadAll()
		if err != nil {
			return fmt.Errorf("stock: cargar: %w", err)
		}
		idx := -1
		for i := range stock {
			if stock[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrNotFound
		}
		stock = append(stock[:idx], stock[idx+1:]...)
		return uc.repo.SaveAll(stock)
	})
}
