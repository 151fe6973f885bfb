package handlers

import (
	"github.com/gofiber/fiber/v3"

	"chatjpt/internal/config"
	"chatjpt/internal/models"
)

// MergeBranding adds branding data and the signed-in user to a fiber.Map for
// template rendering.
func MergeBranding(c fiber.Ctx, data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["BotName"] = cfg.BotName
	if user, ok := c.Locals("user").(*models.User); ok {
		data["User"] = user
	}
	return data
}
