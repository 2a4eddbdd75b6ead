package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
)

// RateLimit limita peticiones por IP con el formato de ulule/limiter ("10-M" = 10 por minuto).
func RateLimit(formatted string) (fiber.Handler, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("rate limit %q: %w", formatted, err)
	}
	instance := limiter.New(memory.NewStore(), rate)

	return func(c *fiber.Ctx) error {
		lctx, err := instance.Get(c.Context(), c.IP())
		if err != nil {
			return writeError(c, err)
		}
		c.Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))
		if lctx.Reached {
			retry := time.Until(time.Unix(lctx.Reset, 0)).Round(time.Second)
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(retry.Seconds())))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "TOO_MANY_REQUESTS", Message: "demasiados intentos, espere antes de reintentar",
			})
		}
		return c.Next()
	}, nil
}
