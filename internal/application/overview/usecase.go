package overview

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

// UseCase expone el resumen de inventario leyendo las colecciones completas
// y delegando el cálculo en Calculate (lectura idempotente, sin escrituras).
type UseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository, stockRepo repository.StockRepository) *UseCase {
	return &UseCase{productRepo: productRepo, stockRepo: stockRepo}
}

// Get carga productos y stock y devuelve el resumen calculado.
func (uc *UseCase) Get(ctx context.Context) ([]dto.InventoryOverviewItem, error) {
	products, err := uc.productRepo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("overview: cargar productos: %w", err)
	}
	stock, err := uc.stockRepo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("overview: cargar stock: %w", err)
	}
	return Calculate(products, stock), nil
}
