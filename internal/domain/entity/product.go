package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status etiqueta enumerada del ciclo de compra/logística de un producto.
type Status string

const (
	StatusPendienteCompra Status = "Pendiente de compra"
	StatusEnTransito      Status = "En transito"
	StatusEnAlmacen       Status = "En almacen"
	StatusDesconocido     Status = "Desconocido"
)

// IsValid indica si el status pertenece al conjunto enumerado.
// La API no lo impone en escritura (el cliente es quien restringe los valores);
// se usa para defaults y resúmenes.
func (s Status) IsValid() bool {
	switch s {
	case StatusPendienteCompra, StatusEnTransito, StatusEnAlmacen, StatusDesconocido:
		return true
	}
	return false
}

// Product representa una línea de inventario. Pertenece a exactamente una categoría,
// que pertenece a exactamente una organización. El ID lo emite el servidor; los IDs
// temporales generados por el cliente solo viven en filas aún no persistidas.
type Product struct {
	ID           string
	CategoryID   string
	Name         string
	Cost         decimal.Decimal // importe monetario, no negativo por contrato del cliente
	Amount       int             // cantidad
	Status       Status
	CreationDate time.Time
}

// Subtotal devuelve Amount × Cost.
func (p *Product) Subtotal() decimal.Decimal {
	return p.Cost.Mul(decimal.NewFromInt(int64(p.Amount)))
}
