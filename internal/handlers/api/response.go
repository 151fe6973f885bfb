package api

import (
	"github.com/gofiber/fiber/v3"

	"chatjpt/internal/models"
)

func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(models.Envelope{Status: "ok", Data: data})
}

func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.Envelope{Status: "error", Error: message})
}
