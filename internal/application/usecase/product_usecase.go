// Package usecase contiene los CRUD de las colecciones base: productos,
// bodegas y filas de stock. Sin integridad referencial: eliminar un producto
// o una bodega deja huérfanas sus filas de stock (decisión documentada, los
// calculadores las toleran).
package usecase

import (
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

// ProductUseCase CRUD de productos.
type ProductUseCase struct {
	repo   repository.ProductRepository
	runner Runner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, runner Runner) *ProductUseCase {
	return &ProductUseCase{repo: repo, runner: runner}
}

// List devuelve la colección completa.
func (uc *ProductUseCase) List() ([]entity.Product, error) {
	return uc.repo.LoadAll()
}

// GetByID obtiene un producto por id; nil si no existe.
func (uc *ProductUseCase) GetByID(id entity.ID) (*entity.Product, error) {
	products, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

// Create agrega un producto con id numérico consecutivo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	var created *entity.Product
	err := uc.runner.Run(func() error {
		products, err := uc.repo.LoadAll()
		if err != nil {
			return fmt.Errorf("products: cargar: %w", err)
		}
		ids := make([]entity.ID, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		p := entity.Product{
			ID:           entity.NextID(ids),
			SKU:          in.SKU,
			Name:         in.Name,
			Category:     in.Category,
			UnitCost:     in.UnitCost,
			ReorderPoint: in.ReorderPoint,
		}
		products = append(products, p)
		if err := uc.repo.SaveAll(products); err != nil {
			return err
		}
		created = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update aplica una actualización parcial; el id no es modificable.
func (uc *ProductUseCase) Update(id entity.ID, in dto.UpdateProductRequest) (*entity.Product, error) {
	var updated *entity.Product
	err := uc.runner.Run(func() error {
		products, err := uc.repo.LoadAll()
		if err != nil {
			return fmt.Errorf("products: cargar: %w", err)
		}
		idx := -1
		for i := range products {
			if products[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrNotFound
		}
		if in.SKU != nil {
			products[idx].SKU = *in.SKU
		}
		if in.Name != nil {
			products[idx].Name = *in.Name
		}
		if in.Category != nil {
			products[idx].Category = *in.Category
		}
		if in.UnitCost != nil {
			products[idx].UnitCost = *in.UnitCost
		}
		if in.ReorderPoint != nil {
			products[idx].ReorderPoint = *in.ReorderPoint
		}
		if err := uc.repo.SaveAll(products); err != nil {
			return err
		}
		updated = &products[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete elimina el producto. Las filas de stock que lo referencian quedan
// huérfanas a propósito.
func (uc *ProductUseCase) Delete(id entity.ID) error {
	return uc.runner.Run(func() error {
		products, err := uc.repo.LoadAll()
		if err != nil {
			return fmt.Errorf("products: cargar: %w", err)
		}
		idx := -1
		for i := range products {
			if products[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrNotFound
		}
		products = append(products[:idx], products[idx+1:]...)
		return uc.repo.SaveAll(products)
	})
}
