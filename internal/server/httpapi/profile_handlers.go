package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

type profileRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (s *Server) handleGetProfile(c *fiber.Ctx) error {
	user, err := s.users.GetProfile(c.UserContext(), s.callerID(c))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(user)
}

func (s *Server) handleUpdateProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Message: "failed to parse request body"})
	}

	user, err := s.users.UpdateProfile(c.UserContext(), s.callerID(c), req.Name, req.Image)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(user)
}

func (s *Server) handleAvatarUploadURL(c *fiber.Ctx) error {
	key, uploadURL, err := s.avatars.UploadURL(c.UserContext(), s.callerID(c))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(fiber.Map{"key": key, "url": uploadURL})
}
