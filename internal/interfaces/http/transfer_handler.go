package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/signalee/inventario-api/internal/application/dto"
	"github.com/signalee/inventario-api/internal/application/transfer"
	"github.com/signalee/inventario-api/internal/domain"
)

// TransferHandler expone la exportación e importación de la tabla en los
// formatos de intercambio (PDF, Excel, CSV, JSON).
type TransferHandler struct {
	export   *transfer.ExportUseCase
	importer *transfer.ImportUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(export *transfer.ExportUseCase, imp *transfer.ImportUseCase) *TransferHandler {
	return &TransferHandler{export: export, importer: imp}
}

// Export godoc
// @Summary      Exportar la tabla de productos
// @Description  Descarga la tabla cargada (filtrada y ordenada) en el formato pedido. Excluye campos internos y aplica las cabeceras traducidas.
// @Tags         transfer
// @Produce      application/pdf
// @Param        organizationId  path   string  true   "Nombre de la organización"
// @Param        categoryId      path   string  true   "Nombre de la categoría"
// @Param        format          query  string  false  "pdf | xlsx | csv | json"  default(json)
// @Param        filter          query  string  false  "Subcadena sobre el nombre"
// @Param        sensitive       query  bool    false  "Filtro sensible a mayúsculas"
// @Param        sortBy          query  string  false  "name | cost | amount | creationDate"
// @Param        order           query  string  false  "asc | desc"  default(asc)
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/data/{organizationId}/{categoryId}/export [get]
func (h *TransferHandler) Export(c *fiber.Ctx) error {
	organizationName := c.Params("organizationId")
	categoryName := c.Params("categoryId")
	opts := transfer.ExportOptions{
		Format:        transfer.Format(c.Query("format", string(transfer.FormatJSON))),
		Filter:        c.Query("filter"),
		CaseSensitive: c.QueryBool("sensitive", false),
		SortBy:        c.Query("sortBy"),
		Order:         c.Query("order", "asc"),
	}
	file, err := h.export.Export(organizationName, categoryName, opts)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: err.Error()})
		case errors.Is(err, domain.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "CATEGORY_NOT_FOUND",
				Message: fmt.Sprintf("categoría '%s' no encontrada para la organización '%s'", categoryName, organizationName),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return c.Send(file.Data)
}

// Import godoc
// @Summary      Importar productos desde un archivo
// @Description  Acepta un array JSON o un CSV con fila de cabecera; cada fila válida se crea como producto nuevo. Respuesta agregada con creadas/descartadas/fallidas.
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Param        organizationId  path  string  true  "Nombre de la organización"
// @Param        categoryId      path  string  true  "Nombre de la categoría"
// @Success      200  {object}  dto.ImportResult
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/data/{organizationId}/{categoryId}/import [post]
func (h *TransferHandler) Import(c *fiber.Ctx) error {
	organizationName := c.Params("organizationId")
	categoryName := c.Params("categoryId")
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BODY", Message: "el archivo está vacío"})
	}

	var (
		out *dto.ImportResult
		err error
	)
	if strings.Contains(c.Get(fiber.HeaderContentType), "csv") {
		out, err = h.importer.ImportCSV(organizationName, categoryName, body)
	} else {
		out, err = h.importer.ImportJSON(organizationName, categoryName, body)
	}
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
