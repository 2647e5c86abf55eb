package jsonstore

import (
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre products.json.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el adaptador.
func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

// LoadAll carga la colección completa de productos.
func (r *ProductRepo) LoadAll() ([]entity.Product, error) {
	return load[entity.Product](r.s, productsFile)
}

// SaveAll sobrescribe la colección completa de productos.
func (r *ProductRepo) SaveAll(products []entity.Product) error {
	return save(r.s, productsFile, products)
}
