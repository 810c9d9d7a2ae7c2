package api

import (
	"github.com/gofiber/fiber/v2"
)

// GetPing implements the health check endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.SendString("pong")
}
