package repository

import "github.com/signalee/inventario-api/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	GetByName(name string) (*entity.Organization, error)
	List() ([]*entity.Organization, error)
}
