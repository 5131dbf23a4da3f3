package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/signalee/inventario-api/internal/domain"
	"github.com/signalee/inventario-api/internal/domain/repository"
)

// Format formato de exportación soportado.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// TablePDFGenerator puerto hacia el generador de PDF tabular.
type TablePDFGenerator interface {
	GenerateTable(title string, headers []string, rows [][]string, footer string) ([]byte, error)
}

// WorkbookGenerator puerto hacia el generador de libros Excel (una hoja por exportación).
type WorkbookGenerator interface {
	GenerateWorkbook(sheet string, headers []string, rows [][]string) ([]byte, error)
}

// ExportOptions parámetros de una exportación: formato de salida y el estado
// filtrado/ordenado de la tabla expresado como parámetros de la petición.
type ExportOptions struct {
	Format        Format
	Filter        string // subcadena sobre el nombre
	CaseSensitive bool
	SortBy        string // name | cost | amount | creationDate
	Order         string // asc | desc
}

// File archivo exportado listo para descarga.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportUseCase materializa la tabla cargada (filtrada y ordenada) en un
// formato de intercambio.
type ExportUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	pdf        TablePDFGenerator
	workbook   WorkbookGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	pdf TablePDFGenerator,
	workbook WorkbookGenerator,
) *ExportUseCase {
	return &ExportUseCase{categories: categories, products: products, pdf: pdf, workbook: workbook}
}

// Export carga los productos del ámbito (organización, categoría), aplica
// filtro y orden, y los convierte al formato pedido.
func (uc *ExportUseCase) Export(organizationName, categoryName string, opts ExportOptions) (*File, error) {
	category, err := uc.categories.GetByNameAndOrganization(categoryName, organizationName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	products, err := uc.products.ListByCategory(category.ID)
	if err != nil {
		return nil, err
	}

	products = FilterByName(products, opts.Filter, opts.CaseSensitive)
	SortBy(products, opts.SortBy, opts.Order)
	rows := buildRows(products, organizationName)

	name := fmt.Sprintf("inventario_%s_%s.%s", organizationName, categoryName, opts.Format)
	switch opts.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("export json: %w", err)
		}
		return &File{Name: name, ContentType: "application/json", Data: data}, nil

	case FormatCSV:
		data, err := gocsv.MarshalBytes(&rows)
		if err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
		return &File{Name: name, ContentType: "text/csv; charset=utf-8", Data: data}, nil

	case FormatXLSX:
		data, err := uc.workbook.GenerateWorkbook(CategoryTitle(categoryName), Headers, toCells(rows))
		if err != nil {
			return nil, fmt.Errorf("export xlsx: %w", err)
		}
		return &File{
			Name:        name,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil

	case FormatPDF:
		title := "Inventario / " + CategoryTitle(categoryName)
		footer := fmt.Sprintf("Generado el %s · %d productos",
			time.Now().Format(dateLayout), len(rows))
		data, err := uc.pdf.GenerateTable(title, Headers, toCells(rows), footer)
		if err != nil {
			return nil, fmt.Errorf("export pdf: %w", err)
		}
		return &File{Name: name, ContentType: "application/pdf", Data: data}, nil
	}
	return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, opts.Format)
}

// toCells aplana las filas a celdas de texto en el orden de Headers.
func toCells(rows []Row) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.Name,
			r.Status,
			r.CreationDate,
			fmt.Sprintf("%d", r.Amount),
			r.Cost.StringFixed(2),
			r.Space,
		})
	}
	return cells
}
