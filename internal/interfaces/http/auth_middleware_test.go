package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/topcar/stock-api/internal/interfaces/http"
)

func newProtectedApp(expectedToken string) *fiber.App {
	app := fiber.New()
	app.Post("/protegida", apihttp.TokenAuthMiddleware(expectedToken), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestTokenAuth_TokenValidoPasa(t *testing.T) {
	app := newProtectedApp("secreto-del-taller")

	req := httptest.NewRequest("POST", "/protegida", nil)
	req.Header.Set(apihttp.HeaderAuthToken, "secreto-del-taller")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTokenAuth_SinCabeceraRechazado(t *testing.T) {
	app := newProtectedApp("secreto-del-taller")

	req := httptest.NewRequest("POST", "/protegida", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenAuth_TokenIncorrectoRechazado(t *testing.T) {
	app := newProtectedApp("secreto-del-taller")

	req := httptest.NewRequest("POST", "/protegida", nil)
	req.Header.Set(apihttp.HeaderAuthToken, "otro-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenAuth_TokenNoConfiguradoRechazaTodo(t *testing.T) {
	// Sin AUTH_TOKEN configurado la compuerta queda cerrada, incluso si el
	// cliente manda cabecera vacía.
	app := newProtectedApp("")

	req := httptest.NewRequest("POST", "/protegida", nil)
	req.Header.Set(apihttp.HeaderAuthToken, "")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
