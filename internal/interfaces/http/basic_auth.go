package http

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
)

// LocalUser key de Locals con el usuario autenticado.
const LocalUser = "user"

// PublicPrefixes rutas que no pasan por la autenticación.
var PublicPrefixes = []string{"/api/", "/static/", "/favicon.ico"}

// BasicAuthConfig credenciales esperadas y realm del desafío.
type BasicAuthConfig struct {
	User     string
	Password string
	Realm    string
}

// BasicAuthMiddleware exige HTTP Basic en todas las rutas salvo PublicPrefixes.
// Cabecera ausente, Base64 inválido o credenciales incorrectas responden 401 con
// WWW-Authenticate: Basic realm="<realm>".
func BasicAuthMiddleware(cfg BasicAuthConfig) fiber.Handler {
	realm := cfg.Realm
	if realm == "" {
		realm = "Secure Area"
	}
	challenge := fmt.Sprintf("Basic realm=%q", realm)

	return basicauth.New(basicauth.Config{
		Next:  isPublicPath,
		Realm: realm,
		Authorizer: func(user, pass string) bool {
			userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.User)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.Password)) == 1
			return userOK && passOK
		},
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, challenge)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "autenticación requerida",
			})
		},
		ContextUsername: LocalUser,
	})
}

func isPublicPath(c *fiber.Ctx) bool {
	path := c.Path()
	for _, p := range PublicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// GetUser devuelve el usuario autenticado (después del middleware de auth).
func GetUser(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUser).(string)
	return s
}
