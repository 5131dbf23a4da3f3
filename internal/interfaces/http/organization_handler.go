package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/signalee/inventario-api/internal/application/dto"
	"github.com/signalee/inventario-api/internal/application/usecase"
	"github.com/signalee/inventario-api/internal/domain"
)

// OrganizationHandler maneja la colección de organizaciones (/api/data).
type OrganizationHandler struct {
	uc *usecase.OrganizationUseCase
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(uc *usecase.OrganizationUseCase) *OrganizationHandler {
	return &OrganizationHandler{uc: uc}
}

// List godoc
// @Summary      Listar organizaciones
// @Tags         organizations
// @Produce      json
// @Success      200  {array}  dto.OrganizationResponse
// @Router       /api/data [get]
func (h *OrganizationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear organización (con sus categorías por defecto)
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrganizationRequest  true  "Datos de la organización"
// @Success      201   {object}  dto.OrganizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/data [post]
func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una organización con ese nombre"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
