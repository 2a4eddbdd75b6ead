package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MiNegocio-api/internal/application/auth"
	"github.com/jhoicas/MiNegocio-api/internal/domain"
	apphttp "github.com/jhoicas/MiNegocio-api/internal/interfaces/http"
)

// fakeAuthenticator acepta solo el token "valido".
type fakeAuthenticator struct {
	err error
}

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (*auth.Principal, error) {
	if f.err != nil {
		return nil, f.err
	}
	if token != "valido" {
		return nil, domain.ErrUnauthorized
	}
	return &auth.Principal{UserID: "u-1", Email: "a@b.mx", SessionID: "s-1"}, nil
}

func buildProtectedApp(authn fakeAuthenticator) *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(authn), func(c *fiber.Ctx) error {
		p := apphttp.GetPrincipal(c)
		return c.JSON(fiber.Map{"user_id": p.UserID, "session_id": p.SessionID})
	})
	return app
}

func getProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_TokenValidoPasa(t *testing.T) {
	resp := getProtected(t, buildProtectedApp(fakeAuthenticator{}), "Bearer valido")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "u-1", body["user_id"])
	assert.Equal(t, "s-1", body["session_id"])
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp := getProtected(t, buildProtectedApp(fakeAuthenticator{}), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	resp := getProtected(t, buildProtectedApp(fakeAuthenticator{}), "Token valido")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_TokenRechazado(t *testing.T) {
	resp := getProtected(t, buildProtectedApp(fakeAuthenticator{}), "Bearer otro")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_SesionCerrada(t *testing.T) {
	resp := getProtected(t, buildProtectedApp(fakeAuthenticator{err: domain.ErrSessionNotFound}), "Bearer valido")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(t, resp))
}

func TestAuthMiddleware_FalloDelAlmacenDeSesiones(t *testing.T) {
	resp := getProtected(t, buildProtectedApp(fakeAuthenticator{err: fmt.Errorf("redis caído")}), "Bearer valido")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", errorCode(t, resp))
}
