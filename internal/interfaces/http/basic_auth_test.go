package http_test

import (
	"encoding/base64"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/cotizador-api/internal/interfaces/http"
)

func buildAuthApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.BasicAuthMiddleware(apphttp.BasicAuthConfig{
		User: "admin", Password: "secreto", Realm: "Secure Area",
	}))
	ok := func(c *fiber.Ctx) error { return c.SendString("ok:" + apphttp.GetUser(c)) }
	app.Get("/products", ok)
	app.Get("/api/health", ok)
	app.Get("/static/app.css", ok)
	app.Get("/favicon.ico", ok)
	return app
}

func basic(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

// ─── Rutas protegidas ──────────────────────────────────────────────────────

func TestBasicAuth_Rejections(t *testing.T) {
	app := buildAuthApp()

	cases := []struct {
		name   string
		header string
	}{
		{"sin cabecera", ""},
		{"base64 inválido", "Basic %%%no-es-base64"},
		{"sin dos puntos", "Basic " + base64.StdEncoding.EncodeToString([]byte("adminsecreto"))},
		{"usuario incorrecto", basic("root", "secreto")},
		{"contraseña incorrecta", basic("admin", "otra")},
		{"esquema Bearer", "Bearer abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/products", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, `Basic realm="Secure Area"`, resp.Header.Get("WWW-Authenticate"))
		})
	}
}

func TestBasicAuth_ValidCredentials(t *testing.T) {
	app := buildAuthApp()

	req := httptest.NewRequest("GET", "/products", nil)
	req.Header.Set("Authorization", basic("admin", "secreto"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok:admin", readBody(t, resp))
}

// ─── Rutas públicas ────────────────────────────────────────────────────────

func TestBasicAuth_PublicPaths(t *testing.T) {
	app := buildAuthApp()

	for _, path := range []string{"/api/health", "/static/app.css", "/favicon.ico"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestBasicAuth_DefaultRealm(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.BasicAuthMiddleware(apphttp.BasicAuthConfig{User: "a", Password: "b"}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, `Basic realm="Secure Area"`, resp.Header.Get("WWW-Authenticate"))
}
