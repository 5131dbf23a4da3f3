package postgres

import (
	"context"
	"fmt"

	"github.com/signalee/inventario-api/internal/domain"
	"github.com/signalee/inventario-api/internal/domain/entity"
	"github.com/signalee/inventario-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría. (name, organization_id) es único compuesto.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, organization_id)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.OrganizationID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByNameAndOrganization resuelve la categoría por (nombre, nombre de organización).
func (r *CategoryRepo) GetByNameAndOrganization(name, organizationName string) (*entity.Category, error) {
	query := `
		SELECT c.id, c.name, c.organization_id
		FROM categories c
		JOIN organizations o ON o.id = c.organization_id
		WHERE c.name = $1 AND o.name = $2`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, name, organizationName).Scan(
		&c.ID, &c.Name, &c.OrganizationID,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListByOrganization lista las categorías de una organización por su ID.
func (r *CategoryRepo) ListByOrganization(organizationID string) ([]*entity.Category, error) {
	query := `
		SELECT id, name, organization_id
		FROM categories WHERE organization_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.OrganizationID); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
