package postgres

import (
	"context"
	"fmt"

	"github.com/signalee/inventario-api/internal/domain"
	"github.com/signalee/inventario-api/internal/domain/entity"
	"github.com/signalee/inventario-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// Create persiste una nueva organización.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		org.ID, org.Name, org.Description, org.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByName obtiene una organización por nombre (los segmentos de ruta viajan por nombre).
func (r *OrganizationRepo) GetByName(name string) (*entity.Organization, error) {
	return r.getBy(`WHERE name = $1`, name)
}

func (r *OrganizationRepo) getBy(where string, arg any) (*entity.Organization, error) {
	query := `SELECT id, name, description, created_at FROM organizations ` + where
	var o entity.Organization
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&o.ID, &o.Name, &o.Description, &o.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}

// List devuelve todas las organizaciones ordenadas por nombre.
func (r *OrganizationRepo) List() ([]*entity.Organization, error) {
	query := `SELECT id, name, description, created_at FROM organizations ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Organization
	for rows.Next() {
		var o entity.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
