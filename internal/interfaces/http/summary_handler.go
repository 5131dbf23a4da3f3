package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/signalee/inventario-api/internal/application/dto"
	"github.com/signalee/inventario-api/internal/application/usecase"
)

// SummaryHandler expone el resumen por categoría que consumen los gráficos del
// dashboard.
type SummaryHandler struct {
	uc *usecase.SummaryUseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *usecase.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// GetByOrganization godoc
// @Summary      Resumen de inventario por categoría
// @Tags         summary
// @Produce      json
// @Param        organizationId  path  string  true  "Nombre de la organización"
// @Success      200  {array}   dto.CategorySummary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/data/{organizationId} [get]
func (h *SummaryHandler) GetByOrganization(c *fiber.Ctx) error {
	organizationName := c.Params("organizationId")
	if organizationName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "organizationId es requerido"})
	}
	out, err := h.uc.GetByOrganization(c.Context(), organizationName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
