package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) nowAtLocation() time.Time {
	return time.Now().In(handler.location)
}
