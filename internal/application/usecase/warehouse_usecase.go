package usecase

import (
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

// WarehouseUseCase CRUD de bodegas.
type WarehouseUseCase struct {
	repo   repository.WarehouseRepository
	runner Runner
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, runner Runner) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, runner: runner}
}

// List devuelve la colección completa.
func (uc *WarehouseUseCase) List() ([]entity.Warehouse, error) {
	return uc.repo.LoadAll()
}

// GetByID obtiene una bodega por id; nil si no existe.
func (uc *WarehouseUseCase) GetByID(id entity.ID) (*entity.Warehouse, error) {
	warehouses, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range warehouses {
		if warehouses[i].ID == id {
			return &warehouses[i], nil
		}
	}
	return nil, nil
}

// Create agrega una bodega con id numérico consecutivo.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*entity.Warehouse, error) {
	var created *entity.Warehouse
	err := uc.runner.Run(func() error {
		warehouses, err := uc.repo.LoadAll()
		if err != nil {
			return fmt.Errorf("warehouses: cargar: %w", err)
		}
		ids := make([]entity.ID, 0, len(warehouses))
		for _, w := range warehouses {
			ids = append(ids, w.ID)
		}
		w := entity.Warehouse{
			ID:       entity.NextID(ids),
			Code:     in.Code,
			Name:     in.Name,
			Location: in.Location,
		}
		warehouses = append(warehouses, w)
		if err := uc.repo.SaveAll(warehouses); err != nil {
			return err
		}
		created = &w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update aplica una actualización parcial; el id no es modificable.
func (uc *WarehouseUseCase) Update(id entity.ID, in dto.UpdateWarehouseRequest) (*entity.Warehouse, error) {
	var updated *entity.Warehouse
	err := uc.runner.Run(func() error {
		warehouses, err := uc.repo.LoadAll()
		if err != nil {
			return fmt.Errorf("warehouses: cargar: %w", err)
		}
		idx := -1
		for i := range warehouses {
			if warehouses[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrNotFound
		}
		if in.Code != nil {
			warehouses[idx].Code = *in.Code
		}
		if in.Name != nil {
			warehouses[idx].Name = *in.Name
		}
		if in.Location != nil {
			warehouses[idx].Location = *in.Location
		}
		if err := uc.repo.SaveAll(warehouses); err != nil {
			return err
		}
		updated = &warehouses[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete elimina la bodega sin tocar sus filas de stock (quedan huérfanas;
// los calculadores las muestran como "Unknown" / valor cero).
func (uc *WarehouseUseCase) Delete(id entity.ID) error {
	return uc.runner.Run(func() error {
		warehouses, err := uc.repo.LoadAll()
		if err != nil {
			return fmt.Errorf("warehouses: cargar: %w", err)
		}
		idx := -1
		for i := range warehouses {
			if warehouses[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrNotFound
		}
		warehouses = append(warehouses[:idx], warehouses[idx+1:]...)
		return uc.repo.SaveAll(warehouses)
	})
}
