package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Message: "failed to parse request body"})
	}

	userID, err := s.users.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	s.logger.Info(c.UserContext(), "user registered", "user_id", userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"userId": userID})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Message: "failed to parse request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Message: "email and password are required"})
	}

	token, session, err := s.users.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"token": token})
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	if err := s.users.Logout(c.UserContext(), s.callerSessionID(c)); err != nil {
		return s.writeError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"message": "logged out"})
}
