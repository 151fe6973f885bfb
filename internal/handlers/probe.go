package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"chatjpt/internal/chat"
	"chatjpt/internal/models"
)

// Pinger checks a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler serves the liveness and readiness endpoints.
type ProbeHandler struct {
	chat *chat.Service
	db   Pinger // nil when running without a database
}

// NewProbeHandler creates a probe handler. database may be nil.
func NewProbeHandler(service *chat.Service, database Pinger) *ProbeHandler {
	return &ProbeHandler{chat: service, db: database}
}

// Liveness reports that the process is up.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(models.Envelope{Status: "ok"})
}

// Readiness reports whether prompts can be answered and persisted. The
// engine itself is always ready once built; only the database can fail.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(models.Envelope{
				Status: "error",
				Error:  "database unavailable",
			})
		}
	}

	conv := h.chat.Conversation()
	return c.JSON(models.Envelope{Status: "ok", Data: fiber.Map{
		"keywords": len(h.chat.Keywords()),
		"messages": conv.Len(),
		"unsaved":  conv.Dirty(),
	}})
}
