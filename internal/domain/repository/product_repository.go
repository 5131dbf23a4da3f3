package repository

import "github.com/signalee/inventario-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve nil sin error cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete elimina el producto y devuelve el registro eliminado
	// (la API responde con él). Devuelve nil sin error si no existía.
	Delete(id string) (*entity.Product, error)
}
