// Package httpapi is the HTTP transport of the server: the fiber app, the
// JSON API handlers, the auth middleware and the page route gate.
package httpapi

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/memorizer/internal/logging"
	"github.com/dmitrijs2005/memorizer/internal/server/services"
)

// SessionCookie is the cookie carrying the session token for browsers.
// API callers may send the same token as an Authorization bearer instead.
const SessionCookie = "session"

type Server struct {
	address   string
	app       *fiber.App
	logger    logging.Logger
	users     *services.UserService
	texts     *services.TextService
	avatars   *services.AvatarService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *services.UserService, ts *services.TextService, as *services.AvatarService, secretKey string) *Server {
	s := &Server{
		address:   address,
		app:       fiber.New(fiber.Config{DisableStartupMessage: true}),
		logger:    l.With("module", "http_server"),
		users:     us,
		texts:     ts,
		avatars:   as,
		jwtSecret: []byte(secretKey),
	}
	s.registerRoutes()
	return s
}

// App exposes the fiber app for tests (app.Test).
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) registerRoutes() {
	app := s.app

	// JSON API
	app.Post("/api/register", s.handleRegister)
	app.Post("/api/login", s.handleLogin)
	app.Post("/api/auth/logout", s.requireAuth, s.handleLogout)

	app.Get("/api/profile", s.requireAuth, s.handleGetProfile)
	app.Put("/api/profile", s.requireAuth, s.handleUpdateProfile)
	app.Post("/api/profile/avatar", s.requireAuth, s.handleAvatarUploadURL)

	app.Get("/api/texts", s.requireAuth, s.handleListTexts)
	app.Post("/api/texts/new", s.requireAuth, s.handleCreateText)
	app.Get("/api/texts/:id", s.requireAuth, s.handleGetText)
	app.Put("/api/texts/:id", s.requireAuth, s.handleUpdateText)
	app.Delete("/api/texts/:id", s.requireAuth, s.handleDeleteText)
	app.Post("/api/texts/practice/:id", s.requireAuth, s.handleMarkPracticed)

	// Page navigation, gated by redirects rather than status codes.
	app.Get("/", s.routeGate, s.pageHandler("home"))
	app.Get("/login", s.routeGate, s.pageHandler("login"))
	app.Get("/register", s.routeGate, s.pageHandler("register"))
	app.Get("/dashboard", s.routeGate, s.pageHandler("dashboard"))
	app.Get("/texts/*", s.routeGate, s.pageHandler("texts"))
	app.Get("/practice/*", s.routeGate, s.pageHandler("practice"))
}

// Run serves HTTP until ctx is done, then shuts the app down.
func (s *Server) Run(ctx context.Context) error {

	errCh := make(chan error, 1)

	go func() {
		errCh <- s.app.Listen(s.address)
	}()

	s.logger.Info(ctx, "HTTP server listening", "address", s.address)

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Shutting down HTTP server")
		return s.app.Shutdown()
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}
