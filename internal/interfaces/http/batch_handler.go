package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/signalee/inventario-api/internal/application/dto"
	"github.com/signalee/inventario-api/internal/application/usecase"
	"github.com/signalee/inventario-api/internal/domain"
)

// BatchHandler expone las operaciones en lote de la tabla editable: guardar
// todas las filas nuevas y eliminar la multi-selección.
type BatchHandler struct {
	uc *usecase.BatchUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *usecase.BatchUseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// CreateAll godoc
// @Summary      Guardar todas las filas nuevas
// @Description  Valida todas las filas antes de persistir; si alguna está incompleta no se guarda ninguna.
// @Tags         batch
// @Accept       json
// @Produce      json
// @Param        organizationId  path  string  true  "Nombre de la organización"
// @Param        categoryId      path  string  true  "Nombre de la categoría"
// @Param        body  body  dto.BatchCreateRequest  true  "Filas nuevas con su clientId temporal"
// @Success      201   {object}  dto.BatchCreateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/data/{organizationId}/{categoryId}/batch [post]
func (h *BatchHandler) CreateAll(c *fiber.Ctx) error {
	organizationName := c.Params("organizationId")
	categoryName := c.Params("categoryId")
	var in dto.BatchCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateAll(organizationName, categoryName, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			// Error agregado único: ninguna fila se persistió.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "por favor complete todos los campos requeridos en las filas nuevas"})
		case errors.Is(err, domain.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "CATEGORY_NOT_FOUND",
				Message: fmt.Sprintf("categoría '%s' no encontrada para la organización '%s'", categoryName, organizationName),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteAll godoc
// @Summary      Eliminar filas seleccionadas
// @Description  Un DELETE independiente por fila, en paralelo. Con fallos parciales la respuesta reporta el conteo agregado y los IDs confirmados.
// @Tags         batch
// @Accept       json
// @Produce      json
// @Param        organizationId  path  string  true  "Nombre de la organización"
// @Param        categoryId      path  string  true  "Nombre de la categoría"
// @Param        body  body  dto.BatchDeleteRequest  true  "IDs de producto seleccionados"
// @Success      200   {object}  dto.BatchDeleteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/data/{organizationId}/{categoryId}/batch [delete]
func (h *BatchHandler) DeleteAll(c *fiber.Ctx) error {
	var in dto.BatchDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.DeleteAll(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productIds es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
