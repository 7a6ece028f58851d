package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/topcar/stock-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, estado y duración.
// El request_id lo deja el middleware requestid en c.Locals.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		reqID, _ := c.Locals("requestid").(string)
		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
