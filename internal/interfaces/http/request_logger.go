package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// RequestLogger escribe una línea por petición con método, ruta, estado, latencia y request id.
// Agrega el usuario autenticado cuando la ruta pasó por BasicAuthMiddleware.
// Debe montarse después de requestid.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev = ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID))
		if user := GetUser(c); user != "" {
			ev = ev.Str("user", user)
		}
		ev.Msg("http")
		return err
	}
}
