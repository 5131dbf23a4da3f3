package transfer

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cast"
	"golang.org/x/sync/errgroup"

	"github.com/signalee/inventario-api/internal/application/dto"
	"github.com/signalee/inventario-api/internal/application/usecase"
	"github.com/signalee/inventario-api/internal/domain"
)

// jsonImportRow fila tal como llega en un archivo JSON importado; los campos
// numéricos pueden venir como número o como cadena.
type jsonImportRow struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Amount any    `json:"amount"`
	Cost   any    `json:"cost"`
}

// csvImportRow fila de un CSV con cabecera (name,status,amount,cost[,creationDate]).
type csvImportRow struct {
	Name   string `csv:"name"`
	Status string `csv:"status"`
	Amount string `csv:"amount"`
	Cost   string `csv:"cost"`
}

// importRecord fila normalizada y lista para validar antes de crear.
type importRecord struct {
	Name   string  `validate:"required"`
	Status string  `validate:"required"`
	Amount int     `validate:"gt=0"`
	Cost   float64 `validate:"gt=0"`
}

// ImportUseCase convierte archivos JSON/CSV al contrato de creación de
// productos y lanza una creación independiente por fila válida. Las filas con
// datos inválidos se descartan y se reportan en el agregado; no hay transacción
// que envuelva el lote.
type ImportUseCase struct {
	products *usecase.ProductUseCase
	validate *validator.Validate
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(products *usecase.ProductUseCase) *ImportUseCase {
	return &ImportUseCase{products: products, validate: validator.New()}
}

// ImportJSON importa un array JSON de filas.
func (uc *ImportUseCase) ImportJSON(organizationName, categoryName string, data []byte) (*dto.ImportResult, error) {
	var rows []jsonImportRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: el archivo JSON no es un array de filas", domain.ErrInvalidInput)
	}
	records, skipped := uc.normalizeJSON(rows)
	return uc.createAll(organizationName, categoryName, records, skipped)
}

// ImportCSV importa un CSV con fila de cabecera.
func (uc *ImportUseCase) ImportCSV(organizationName, categoryName string, data []byte) (*dto.ImportResult, error) {
	var rows []csvImportRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: no se pudo parsear el CSV", domain.ErrInvalidInput)
	}
	records := make([]importRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		rec, err := uc.normalize(row.Name, row.Status, row.Amount, row.Cost)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return uc.createAll(organizationName, categoryName, records, skipped)
}

func (uc *ImportUseCase) normalizeJSON(rows []jsonImportRow) ([]importRecord, int) {
	records := make([]importRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		rec, err := uc.normalize(row.Name, row.Status, row.Amount, row.Cost)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}

// normalize coerce los campos numéricos y valida la fila; una fila que no pasa
// se descarta (no aborta la importación completa).
func (uc *ImportUseCase) normalize(name, status string, amountIn, costIn any) (importRecord, error) {
	amount, err := cast.ToIntE(amountIn)
	if err != nil {
		return importRecord{}, domain.ErrInvalidInput
	}
	cost, err := cast.ToFloat64E(costIn)
	if err != nil {
		return importRecord{}, domain.ErrInvalidInput
	}
	rec := importRecord{Name: name, Status: status, Amount: amount, Cost: cost}
	if err := uc.validate.Struct(rec); err != nil {
		return importRecord{}, domain.ErrInvalidInput
	}
	return rec, nil
}

// createAll una creación concurrente por fila válida; fallos individuales no
// detienen el resto, solo suman al conteo agregado.
func (uc *ImportUseCase) createAll(organizationName, categoryName string, records []importRecord, skipped int) (*dto.ImportResult, error) {
	var (
		mu      sync.Mutex
		created []dto.ProductResponse
		failed  int
	)
	var g errgroup.Group
	for _, rec := range records {
		g.Go(func() error {
			resp, err := uc.products.Create(organizationName, categoryName, dto.CreateProductRequest{
				Name:   rec.Name,
				Cost:   rec.Cost,
				Amount: rec.Amount,
				Status: rec.Status,
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				return nil
			}
			created = append(created, *resp)
			return nil
		})
	}
	_ = g.Wait()

	if created == nil {
		created = []dto.ProductResponse{}
	}
	return &dto.ImportResult{Created: created, Skipped: skipped, Failed: failed}, nil
}
