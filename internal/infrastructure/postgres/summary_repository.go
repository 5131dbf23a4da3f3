package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/signalee/inventario-api/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo consultas de solo lectura para el resumen por organización.
type SummaryRepo struct {
	pool *pgxpool.Pool
}

// NewSummaryRepository construye el adaptador de resúmenes.
func NewSummaryRepository(pool *pgxpool.Pool) *SummaryRepo {
	return &SummaryRepo{pool: pool}
}

// ListByOrganization devuelve todos los productos de la organización (por nombre)
// junto con el nombre de su categoría. La reducción por categoría se hace en el
// caso de uso; el resumen se calcula por petición, sin caché ni mantenimiento
// incremental.
func (r *SummaryRepo) ListByOrganization(ctx context.Context, organizationName string) ([]repository.ProductWithCategory, error) {
	const query = `
	SELECT c.name AS category, p.name, p.amount, p.cost, p.status
	FROM products p
	JOIN categories    c ON c.id = p.category_id
	JOIN organizations o ON o.id = c.organization_id
	WHERE o.name = $1
	ORDER BY p.creation_date, p.id`

	rows, err := r.pool.Query(ctx, query, organizationName)
	if err != nil {
		return nil, fmt.Errorf("summary.ListByOrganization: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductWithCategory
	for rows.Next() {
		var row repository.ProductWithCategory
		if err := rows.Scan(&row.Category, &row.Name, &row.Amount, &row.Cost, &row.Status); err != nil {
			return nil, fmt.Errorf("summary.ListByOrganization scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
