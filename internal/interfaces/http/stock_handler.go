package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/topcar/stock-api/internal/application/catalog"
	"github.com/topcar/stock-api/internal/application/dto"
	"github.com/topcar/stock-api/internal/domain"
)

// StockHandler maneja las peticiones HTTP del catálogo de stock.
type StockHandler struct {
	uc *catalog.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *catalog.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create godoc
// @Summary      Crear artículo de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockItemRequest  true  "name; quantity, min_level, unit_price, supplier, reorder_qty opcionales"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido y numéricos no negativos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar stock
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener un artículo por ID
// @Tags         stock
// @Produce      json
// @Param        id   path      int  true  "ID del artículo"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// Reorder godoc
// @Summary      Lista de reposición
// @Description  Artículos con cantidad en o por debajo de su nivel mínimo.
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/stock/reorder [get]
func (h *StockHandler) Reorder(c *fiber.Ctx) error {
	out, err := h.uc.ListBelowMinimum()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
