package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/memorizer/internal/server/models"
)

type textRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    string `json:"tags"`
}

func (s *Server) handleListTexts(c *fiber.Ctx) error {
	list, err := s.texts.List(c.UserContext(), s.callerID(c), c.Query("search"))
	if err != nil {
		return s.writeError(c, err)
	}
	if list == nil {
		list = []*models.Text{}
	}
	return c.JSON(list)
}

func (s *Server) handleGetText(c *fiber.Ctx) error {
	text, err := s.texts.Get(c.UserContext(), c.Params("id"), s.callerID(c))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(text)
}

func (s *Server) handleCreateText(c *fiber.Ctx) error {
	var req textRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Message: "failed to parse request body"})
	}

	text, err := s.texts.Create(c.UserContext(), s.callerID(c), req.Title, req.Content, req.Tags)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"textId": text.ID})
}

func (s *Server) handleUpdateText(c *fiber.Ctx) error {
	var req textRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Message: "failed to parse request body"})
	}

	text, err := s.texts.Update(c.UserContext(), c.Params("id"), s.callerID(c), req.Title, req.Content, req.Tags)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(fiber.Map{"text": text})
}

func (s *Server) handleDeleteText(c *fiber.Ctx) error {
	if err := s.texts.Delete(c.UserContext(), c.Params("id"), s.callerID(c)); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "text deleted"})
}

func (s *Server) handleMarkPracticed(c *fiber.Ctx) error {
	text, err := s.texts.MarkPracticed(c.UserContext(), c.Params("id"), s.callerID(c))
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(fiber.Map{"lastPracticedAt": text.LastPracticedAt})
}
