package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/topcar/stock-api/internal/application/dto"
)

// HeaderAuthToken es la cabecera con el token compartido del taller.
const HeaderAuthToken = "X-Auth-Token"

// TokenAuthMiddleware valida el token compartido (X-Auth-Token) contra el
// configurado. Es una compuerta booleana: pasa o no pasa; el core de la
// aplicación no sabe nada de tokens. La comparación es en tiempo constante.
func TokenAuthMiddleware(expected string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(HeaderAuthToken)
		if expected == "" || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "token requerido (X-Auth-Token)",
			})
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "token inválido",
			})
		}
		return c.Next()
	}
}
