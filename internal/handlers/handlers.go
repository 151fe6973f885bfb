package handlers

import (
	"html"

	"github.com/gofiber/fiber/v3"
)

// errorSlot is the element on the chat page that holds validation messages.
const errorSlot = "#chat-error"

// htmxError sends message into the page's error slot instead of the element
// the form targets. Uses 200 status so HTMX processes the swap (HTMX ignores
// non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	c.Set("HX-Retarget", errorSlot)
	c.Set("HX-Reswap", "innerHTML")
	return c.SendString(html.EscapeString(message))
}

// isHTMX reports whether the request was issued by HTMX.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
