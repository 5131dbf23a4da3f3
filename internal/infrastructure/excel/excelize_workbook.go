// Package excel implementa la exportación a libro de Excel con excelize:
// una hoja por exportación, cabecera traducida en la primera fila.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/signalee/inventario-api/internal/application/transfer"
)

var _ transfer.WorkbookGenerator = (*ExcelizeWorkbookGenerator)(nil)

// ExcelizeWorkbookGenerator implementa transfer.WorkbookGenerator.
type ExcelizeWorkbookGenerator struct{}

// NewExcelizeWorkbookGenerator construye el generador.
func NewExcelizeWorkbookGenerator() *ExcelizeWorkbookGenerator { return &ExcelizeWorkbookGenerator{} }

// GenerateWorkbook escribe cabecera y filas en una hoja con el nombre indicado
// y devuelve los bytes del .xlsx.
func (g *ExcelizeWorkbookGenerator) GenerateWorkbook(sheet string, headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	if err := writeRow(f, sheet, 1, headers); err != nil {
		return nil, err
	}
	for i, cells := range rows {
		if err := writeRow(f, sheet, i+2, cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("excel: coordenadas fila %d: %w", rowNum, err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("excel: escribir celda %s: %w", cell, err)
		}
	}
	return nil
}
