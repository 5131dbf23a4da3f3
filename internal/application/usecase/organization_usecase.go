package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/signalee/inventario-api/internal/application/dto"
	"github.com/signalee/inventario-api/internal/domain"
	"github.com/signalee/inventario-api/internal/domain/entity"
	"github.com/signalee/inventario-api/internal/domain/repository"
)

// OrganizationTxRunner ejecuta un callback con repos atados a una transacción.
// La creación de una organización y sus categorías por defecto es atómica.
type OrganizationTxRunner interface {
	Run(ctx context.Context, fn func(
		orgRepo repository.OrganizationRepository,
		categoryRepo repository.CategoryRepository,
	) error) error
}

// OrganizationUseCase casos de uso para la colección de organizaciones.
type OrganizationUseCase struct {
	orgs repository.OrganizationRepository
	tx   OrganizationTxRunner
}

// NewOrganizationUseCase construye el caso de uso.
func NewOrganizationUseCase(orgs repository.OrganizationRepository, tx OrganizationTxRunner) *OrganizationUseCase {
	return &OrganizationUseCase{orgs: orgs, tx: tx}
}

// List devuelve todas las organizaciones.
func (uc *OrganizationUseCase) List() ([]dto.OrganizationResponse, error) {
	list, err := uc.orgs.List()
	if err != nil {
		return nil, err
	}
	items := []dto.OrganizationResponse{}
	for _, o := range list {
		items = append(items, toOrganizationResponse(o))
	}
	return items, nil
}

// Create registra una organización nueva y provisiona sus categorías por defecto
// (devices, digital_assets, materials) en la misma transacción.
func (uc *OrganizationUseCase) Create(ctx context.Context, in dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	org := &entity.Organization{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	err := uc.tx.Run(ctx, func(orgRepo repository.OrganizationRepository, categoryRepo repository.CategoryRepository) error {
		if err := orgRepo.Create(org); err != nil {
			return err
		}
		for _, name := range entity.DefaultCategoryNames {
			category := &entity.Category{
				ID:             uuid.New().String(),
				OrganizationID: org.ID,
				Name:           name,
			}
			if err := categoryRepo.Create(category); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toOrganizationResponse(org)
	return &resp, nil
}

func toOrganizationResponse(o *entity.Organization) dto.OrganizationResponse {
	return dto.OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
	}
}
