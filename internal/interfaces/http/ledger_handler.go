package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/topcar/stock-api/internal/application/dto"
	"github.com/topcar/stock-api/internal/application/ledger"
	"github.com/topcar/stock-api/internal/domain"
)

// LedgerHandler maneja las peticiones HTTP del motor del ledger (protegido).
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Checkout godoc
// @Summary      Descargar stock hacia un trabajo
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "item_id, quantity, job_no"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ledger/checkout [post]
func (h *LedgerHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Checkout(c.Context(), in)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(out)
}

// Receive godoc
// @Summary      Ingresar stock
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveRequest  true  "item_id, quantity"
// @Success      200   {object}  dto.ReceiveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ledger/receive [post]
func (h *LedgerHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Receive(c.Context(), in)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(out)
}

// Reverse godoc
// @Summary      Anular una transacción del ledger
// @Description  Inserta una fila reverse enlazada; nunca edita la original.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReverseRequest  true  "transaction_id"
// @Success      200   {object}  dto.ReverseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ledger/reverse [post]
func (h *LedgerHandler) Reverse(c *fiber.Ctx) error {
	var in dto.ReverseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Reverse(c.Context(), in)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(out)
}

// ledgerError mapea los errores de dominio del motor a códigos HTTP.
func ledgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo o transacción no encontrada"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrInvalidReversal):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_REVERSAL", Message: "la transacción no admite reversa"})
	case errors.Is(err, domain.ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: "almacenamiento no disponible, reintente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
