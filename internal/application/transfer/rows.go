// Package transfer convierte entre la representación en memoria de las filas
// del inventario y los formatos de intercambio externos (PDF, Excel, CSV, JSON).
// El servidor entrega el archivo ya convertido y acepta los archivos importados;
// el cliente no convierte nada.
package transfer

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/signalee/inventario-api/internal/domain/entity"
)

// Row fila exportable. Excluye los campos internos (ID de fila, flag de
// selección); las etiquetas CSV son la tabla fija de traducción de cabeceras.
type Row struct {
	Name         string          `json:"name" csv:"Nombre"`
	Status       string          `json:"status" csv:"Estado"`
	CreationDate string          `json:"creationDate" csv:"Fecha de Creación"`
	Amount       int             `json:"amount" csv:"Cantidad"`
	Cost         decimal.Decimal `json:"cost" csv:"Costo"`
	Space        string          `json:"space" csv:"Organización"`
}

// Headers cabeceras traducidas, en el orden de las columnas de la tabla.
var Headers = []string{"Nombre", "Estado", "Fecha de Creación", "Cantidad", "Costo", "Organización"}

// categoryTitles títulos de presentación por categoría.
var categoryTitles = map[string]string{
	"devices":        "Dispositivos",
	"digital_assets": "Activos Digitales",
	"materials":      "Materiales",
}

// organizationDisplayNames mapeo de nombre interno a nombre de presentación.
var organizationDisplayNames = map[string]string{
	"nebrija":     "Nebrija",
	"puenteuropa": "Puenteuropa",
	"alcazaren":   "Alcazaren",
	"cnse":        "CNSE",
}

// CategoryTitle devuelve el título de presentación de la categoría, o el nombre
// crudo si no hay traducción.
func CategoryTitle(name string) string {
	if t, ok := categoryTitles[name]; ok {
		return t
	}
	return name
}

// OrganizationDisplayName devuelve el nombre de presentación de la organización.
func OrganizationDisplayName(name string) string {
	if d, ok := organizationDisplayNames[name]; ok {
		return d
	}
	return name
}

// dateLayout formato de fecha es-ES usado en las celdas exportadas.
const dateLayout = "02/01/2006"

// buildRows convierte productos a filas exportables con el nombre de
// presentación de la organización.
func buildRows(products []*entity.Product, organizationName string) []Row {
	space := OrganizationDisplayName(organizationName)
	rows := make([]Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, Row{
			Name:         p.Name,
			Status:       string(p.Status),
			CreationDate: p.CreationDate.Format(dateLayout),
			Amount:       p.Amount,
			Cost:         p.Cost,
			Space:        space,
		})
	}
	return rows
}

// FilterByName filtra por subcadena del nombre; insensible a mayúsculas salvo
// que se pida lo contrario (case folding Unicode, no solo ASCII).
func FilterByName(products []*entity.Product, filter string, caseSensitive bool) []*entity.Product {
	if filter == "" {
		return products
	}
	fold := cases.Fold()
	match := func(name string) bool {
		if caseSensitive {
			return strings.Contains(name, filter)
		}
		return strings.Contains(fold.String(name), fold.String(filter))
	}
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if match(p.Name) {
			out = append(out, p)
		}
	}
	return out
}

// SortBy ordena por la columna indicada (name, cost, amount, creationDate).
// Una columna desconocida deja el orden de carga intacto.
func SortBy(products []*entity.Product, column, order string) {
	desc := order == "desc"
	var less func(a, b *entity.Product) bool
	switch column {
	case "name":
		less = func(a, b *entity.Product) bool { return a.Name < b.Name }
	case "cost":
		less = func(a, b *entity.Product) bool { return a.Cost.LessThan(b.Cost) }
	case "amount":
		less = func(a, b *entity.Product) bool { return a.Amount < b.Amount }
	case "creationDate":
		less = func(a, b *entity.Product) bool { return a.CreationDate.Before(b.CreationDate) }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
