package httpapi

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/memorizer/internal/server/auth"
)

// Locals keys set by requireAuth.
const (
	localUserID    = "userID"
	localSessionID = "sessionID"
)

// protectedPrefixes are the page paths that need a valid session.
var protectedPrefixes = []string{"/dashboard", "/texts", "/practice"}

// publicOnlyPaths redirect to the dashboard when the caller is already
// authenticated.
var publicOnlyPaths = map[string]struct{}{
	"/":         {},
	"/login":    {},
	"/register": {},
}

// tokenFromRequest extracts the session token from the Authorization header
// ("Bearer <token>") or, failing that, from the session cookie.
func tokenFromRequest(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}
	return c.Cookies(SessionCookie)
}

// requireAuth gates the JSON API: a missing or invalid token yields
// 401 with a generic message, a valid one stores the caller's user id and
// session id in Locals for the handlers.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	token := tokenFromRequest(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Message: "unauthorized"})
	}

	userID, sessionID, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Message: "unauthorized"})
	}

	c.Locals(localUserID, userID)
	c.Locals(localSessionID, sessionID)
	return c.Next()
}

// routeGate implements the per-request redirect decision for page
// navigation. Unauthenticated requests to protected prefixes bounce to the
// login page with the raw path+query as callbackUrl; the path is taken
// verbatim from the request, never reconstructed from forwarded headers.
// Authenticated requests to public-only paths bounce to the dashboard.
// Everything under /api/auth passes untouched to avoid redirect loops.
func (s *Server) routeGate(c *fiber.Ctx) error {
	path := c.Path()

	if strings.HasPrefix(path, "/api/auth") {
		return c.Next()
	}

	authenticated := false
	if token := tokenFromRequest(c); token != "" {
		if _, _, err := auth.ParseToken(token, s.jwtSecret); err == nil {
			authenticated = true
		}
	}

	for _, prefix := range protectedPrefixes {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		if !authenticated {
			callback := path
			if qs := string(c.Request().URI().QueryString()); qs != "" {
				callback += "?" + qs
			}
			v := url.Values{}
			v.Set("callbackUrl", callback)
			return c.Redirect("/login?"+v.Encode(), fiber.StatusFound)
		}
		return c.Next()
	}

	if _, ok := publicOnlyPaths[path]; ok && authenticated {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}

	return c.Next()
}

func (s *Server) callerID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

func (s *Server) callerSessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(localSessionID).(string)
	return id
}
