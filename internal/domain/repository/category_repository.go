package repository

import "github.com/signalee/inventario-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	// GetByNameAndOrganization resuelve una categoría por nombre dentro de la
	// organización indicada por nombre (los segmentos de ruta de la API viajan
	// por nombre, no por ID). Devuelve nil sin error si no existe.
	GetByNameAndOrganization(name, organizationName string) (*entity.Category, error)
	ListByOrganization(organizationID string) ([]*entity.Category, error)
}
