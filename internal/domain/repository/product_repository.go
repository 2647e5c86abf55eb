package repository

import "github.com/jhoicas/Inventario-dashboard/internal/domain/entity"

// ProductRepository acceso a la colección completa de productos.
// El storage es archivo plano: no hay lecturas parciales, siempre se carga o
// sobrescribe la colección entera.
type ProductRepository interface {
	LoadAll() ([]entity.Product, error)
	SaveAll(products []entity.Product) error
}
