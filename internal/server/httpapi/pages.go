package httpapi

import "github.com/gofiber/fiber/v2"

// pageHandler serves a minimal placeholder body for page navigation. The
// application shell is rendered client-side; these routes exist so the
// route gate has paths to protect.
func (s *Server) pageHandler(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString(name)
	}
}
