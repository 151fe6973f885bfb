package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"chatjpt/internal/chat"
	"chatjpt/internal/config"
	"chatjpt/internal/history"
)

// ChatHandler serves the conversation window.
type ChatHandler struct {
	chat *chat.Service
	cfg  *config.Config
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(service *chat.Service, cfg *config.Config) *ChatHandler {
	return &ChatHandler{chat: service, cfg: cfg}
}

// Index renders the conversation so far with the input box.
func (h *ChatHandler) Index(c fiber.Ctx) error {
	return c.Render("chat", MergeBranding(c, fiber.Map{
		"Title":     "Chat",
		"Exchanges": h.chat.Exchanges(),
	}, h.cfg))
}

// Send answers the submitted prompt. HTMX requests get the new exchange as a
// fragment; plain form posts are redirected back to the conversation.
func (h *ChatHandler) Send(c fiber.Ctx) error {
	reply, err := h.chat.Ask(c.FormValue("prompt"))
	if err != nil {
		var invalid *chat.InvalidPromptError
		if !errors.As(err, &invalid) {
			return err
		}
		if isHTMX(c) {
			return htmxError(c, invalid.Reason)
		}
		return c.Status(fiber.StatusBadRequest).Render("chat", MergeBranding(c, fiber.Map{
			"Title":     "Chat",
			"Exchanges": h.chat.Exchanges(),
			"Error":     invalid.Reason,
		}, h.cfg))
	}

	if isHTMX(c) {
		return c.Render("partials/exchange", history.Exchange{
			User: reply.Prompt,
			Bot:  reply.Response,
		}, "")
	}
	return c.Redirect().To("/")
}

// Login renders the sign-in page.
func (h *ChatHandler) Login(c fiber.Ctx) error {
	return c.Render("login", MergeBranding(c, fiber.Map{
		"Title": "Sign in",
	}, h.cfg))
}
