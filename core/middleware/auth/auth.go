package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

// HeaderName is the header the shared secret is read from.
const HeaderName = "X-App-Password"

// Config holds the settings of the shared-secret gate.
type Config struct {
	// Password is the expected shared secret. An empty password rejects every request.
	Password string
}

// New returns a middleware that only lets requests through whose X-App-Password header
// matches the configured password.
func New(cfg Config) fiber.Handler {
	expected := []byte(cfg.Password)

	return keyauth.New(keyauth.Config{
		KeyLookup: "header:" + HeaderName,
		Validator: func(c *fiber.Ctx, key string) (bool, error) {
			if len(expected) == 0 {
				return false, keyauth.ErrMissingOrMalformedAPIKey
			}
			if subtle.ConstantTimeCompare([]byte(key), expected) != 1 {
				return false, keyauth.ErrMissingOrMalformedAPIKey
			}
			return true, nil
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing password",
			})
		},
	})
}
