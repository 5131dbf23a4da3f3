package dto

import "github.com/shopspring/decimal"

// CategorySummary resumen de una categoría para el dashboard:
// quantity = Σ amount, subtotal = Σ amount × cost.
type CategorySummary struct {
	Category string          `json:"category"`
	Quantity int64           `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}
