package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

// NewApp arma la aplicación Fiber con middlewares globales, /health y las rutas de la API.
func NewApp(appName string, log *logger.Logger, deps RouterDeps) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(RequestLogger(log.Component("http")))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if err := Router(app, deps); err != nil {
		return nil, err
	}
	return app, nil
}
