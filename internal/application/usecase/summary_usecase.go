package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/signalee/inventario-api/internal/application/dto"
	"github.com/signalee/inventario-api/internal/domain/repository"
)

// SummaryUseCase construye el resumen por categoría que consumen los gráficos
// del dashboard: cantidad total y subtotal monetario (amount × cost) por
// nombre de categoría.
type SummaryUseCase struct {
	summaries repository.SummaryRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(summaries repository.SummaryRepository) *SummaryUseCase {
	return &SummaryUseCase{summaries: summaries}
}

// GetByOrganization agrupa los productos de la organización por categoría.
// Las categorías aparecen en el orden de su primer producto; una organización
// sin productos produce un resumen vacío.
func (uc *SummaryUseCase) GetByOrganization(ctx context.Context, organizationName string) ([]dto.CategorySummary, error) {
	products, err := uc.summaries.ListByOrganization(ctx, organizationName)
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	summary := []dto.CategorySummary{}
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(summary)
			index[p.Category] = i
			summary = append(summary, dto.CategorySummary{
				Category: p.Category,
				Subtotal: decimal.Zero,
			})
		}
		summary[i].Quantity += int64(p.Amount)
		summary[i].Subtotal = summary[i].Subtotal.Add(
			p.Cost.Mul(decimal.NewFromInt(int64(p.Amount))),
		)
	}
	return summary, nil
}
