package api

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v3"

	"chatjpt/internal/chat"
	"chatjpt/internal/models"
)

// ChatHandler exposes the conversation via JSON API.
type ChatHandler struct {
	chat *chat.Service
}

// NewChatHandler creates a new API chat handler.
func NewChatHandler(service *chat.Service) *ChatHandler {
	return &ChatHandler{chat: service}
}

// Respond answers a prompt and records the exchange.
func (h *ChatHandler) Respond(c fiber.Ctx) error {
	var body models.RespondRequest
	if err := sonic.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	reply, err := h.chat.Ask(body.Prompt)
	if err != nil {
		var invalid *chat.InvalidPromptError
		if errors.As(err, &invalid) {
			return jsonError(c, fiber.StatusBadRequest, invalid.Reason)
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to respond")
	}

	return jsonSuccess(c, models.RespondResponse{
		Prompt:   reply.Prompt,
		Response: reply.Response,
		Keyword:  reply.Keyword,
		Count:    reply.Count,
		Fallback: reply.Fallback,
	})
}

// History returns the conversation so far.
func (h *ChatHandler) History(c fiber.Ctx) error {
	exchanges := h.chat.Exchanges()
	resp := models.HistoryResponse{
		Exchanges: make([]models.ExchangeResponse, len(exchanges)),
		Total:     len(exchanges),
	}
	for i, ex := range exchanges {
		resp.Exchanges[i] = models.ExchangeResponse{User: ex.User, Bot: ex.Bot}
	}
	return jsonSuccess(c, resp)
}

// Keywords lists the keywords the engine recognizes.
func (h *ChatHandler) Keywords(c fiber.Ctx) error {
	keywords := h.chat.Keywords()
	return jsonSuccess(c, models.KeywordsResponse{
		Keywords: keywords,
		Count:    len(keywords),
	})
}
