package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/MiNegocio-api/internal/application/auth"
	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/domain"
)

// LocalPrincipal key de Fiber Locals con la identidad autenticada.
const LocalPrincipal = "principal"

// authenticator lo implementa *auth.AuthUseCase.
type authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Principal, error)
}

// AuthMiddleware valida el Bearer Token JWT y que su sesión siga abierta; deja el Principal en Locals.
func AuthMiddleware(authn authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		principal, err := authn.Authenticate(c.Context(), tokenString)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSessionNotFound):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión fue cerrada o expiró"})
			case errors.Is(err, domain.ErrUnauthorized):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
			}
			return writeError(c, err)
		}
		c.Locals(LocalPrincipal, principal)
		return c.Next()
	}
}

// GetPrincipal devuelve la identidad del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(LocalPrincipal).(*auth.Principal)
	return p
}
