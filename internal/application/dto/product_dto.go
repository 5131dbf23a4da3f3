package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto dentro de una categoría.
// Los cuatro campos son obligatorios; cost y amount admiten número o cadena
// numérica (se coercen en el caso de uso).
type CreateProductRequest struct {
	Name   string `json:"name" validate:"required"`
	Cost   any    `json:"cost" validate:"required"`
	Amount any    `json:"amount" validate:"required"`
	Status string `json:"status" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto: parche disperso,
// solo cambian los campos presentes. ProductID es obligatorio y "0" es el
// valor centinela inválido. Cost se coerce a decimal y Amount a entero.
type UpdateProductRequest struct {
	ProductID string  `json:"productId"`
	Name      *string `json:"name"`
	Cost      any     `json:"cost"`
	Amount    any     `json:"amount"`
	Status    *string `json:"status"`
}

// DeleteProductRequest entrada para eliminar un producto por ID.
type DeleteProductRequest struct {
	ProductID string `json:"productId"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Cost         decimal.Decimal `json:"cost"`
	Amount       int             `json:"amount"`
	Status       string          `json:"status"`
	CreationDate time.Time       `json:"creationDate"`
	CategoryID   string          `json:"categoryId"`
}
