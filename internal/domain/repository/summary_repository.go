package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductWithCategory fila de producto con el nombre de su categoría, para el
// resumen por organización.
type ProductWithCategory struct {
	Category string
	Name     string
	Amount   int
	Cost     decimal.Decimal
	Status   string
}

// SummaryRepository consultas de solo lectura para el dashboard.
type SummaryRepository interface {
	// ListByOrganization devuelve todos los productos que la organización posee
	// transitivamente (vía sus categorías), con el nombre de la categoría.
	ListByOrganization(ctx context.Context, organizationName string) ([]ProductWithCategory, error)
}
