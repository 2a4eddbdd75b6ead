package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

// RequestLogger registra cada petición con zerolog; 4xx como warn y 5xx como error con su causa.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError || err != nil:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		if internal, ok := c.Locals(localError).(error); ok {
			ev = ev.Err(internal)
		} else if err != nil {
			ev = ev.Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("http")
		return err
	}
}
