// Package cors adds permissive cross-origin headers for local development.
package cors

import (
	"github.com/gofiber/fiber/v2"
)

// Config holds the header values written on every response.
type Config struct {
	AllowOrigin  string
	AllowMethods string
	AllowHeaders string
}

// ConfigDefault allows any origin to GET and POST with a JSON body.
var ConfigDefault = Config{
	AllowOrigin:  "*",
	AllowMethods: "GET, POST, OPTIONS",
	AllowHeaders: "Content-Type",
}

// New returns the CORS middleware.
//
// OPTIONS requests on any path are answered with 200 and an empty body without
// reaching the next handler. For every other request the headers are written
// after the chain has run, because the static handler resets the response
// when it produces an error page.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			apply(c, cfg)
			// Status, not SendStatus: SendStatus would fill the body with "OK".
			c.Status(fiber.StatusOK)
			return nil
		}

		err := c.Next()
		apply(c, cfg)
		return err
	}
}

func apply(c *fiber.Ctx, cfg Config) {
	c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowOrigin)
	c.Set(fiber.HeaderAccessControlAllowMethods, cfg.AllowMethods)
	c.Set(fiber.HeaderAccessControlAllowHeaders, cfg.AllowHeaders)
}
