package models

import (
	"time"

	"github.com/google/uuid"
)

// Message author constants
const (
	AuthorUser = "user"
	AuthorBot  = "bot"
)

// Message is one entry of the conversation log.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Position  int64     `json:"position"`
	Role      string    `json:"role"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// RoleAt returns the author of the message at position in a log that
// alternates user prompt and bot reply.
func RoleAt(position int64) string {
	if position%2 == 0 {
		return AuthorUser
	}
	return AuthorBot
}

// IsUser returns true if the message was typed by the user.
func (m *Message) IsUser() bool {
	return m.Role == AuthorUser
}
