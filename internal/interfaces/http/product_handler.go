package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/signalee/inventario-api/internal/application/dto"
	"github.com/signalee/inventario-api/internal/application/usecase"
	"github.com/signalee/inventario-api/internal/domain"
)

// ProductHandler maneja las peticiones CRUD de productos en el ámbito
// /api/data/:organizationId/:categoryId. Los segmentos de ruta llevan los
// nombres de organización y categoría.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos de una categoría
// @Tags         products
// @Produce      json
// @Param        organizationId  path  string  true  "Nombre de la organización"
// @Param        categoryId      path  string  true  "Nombre de la categoría"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/data/{organizationId}/{categoryId} [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	organizationName := c.Params("organizationId")
	categoryName := c.Params("categoryId")
	if organizationName == "" || categoryName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de ruta requeridos"})
	}
	// Una categoría sin productos (o inexistente) responde lista vacía, no error.
	items, err := h.uc.List(organizationName, categoryName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        organizationId  path  string  true  "Nombre de la organización"
// @Param        categoryId      path  string  true  "Nombre de la categoría"
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/data/{organizationId}/{categoryId} [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	organizationName := c.Params("organizationId")
	categoryName := c.Params("categoryId")
	if organizationName == "" || categoryName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de ruta requeridos"})
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(organizationName, categoryName, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, cost, amount y status son requeridos"})
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

// Update godoc
// @Summary      Actualizar producto (parche disperso)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        organizationId  path  string  true  "Nombre de la organización"
// @Param        categoryId      path  string  true  "Nombre de la categoría"
// @Param        body  body  dto.UpdateProductRequest  true  "productId y campos a cambiar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/data/{organizationId}/{categoryId} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRODUCT_ID", Message: "productId ausente o inválido"})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        organizationId  path  string  true  "Nombre de la organización"
// @Param        categoryId      path  string  true  "Nombre de la categoría"
// @Param        body  body  dto.DeleteProductRequest  true  "productId a eliminar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/data/{organizationId}/{categoryId} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Delete(in.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PRODUCT_ID", Message: "productId es requerido"})
		case errors.Is(err, domain.ErrProductNotFound):
			// Un borrado de algo inexistente no puede tener éxito en silencio.
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
