// Package history keeps the conversation log: an ordered list of messages
// alternating user prompt and bot reply, persisted between runs.
package history

import (
	"context"
	"sync"
)

// Store persists a conversation log.
type Store interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, messages []string) error
}

// Exchange is one prompt and the reply it received.
type Exchange struct {
	User string
	Bot  string
}

// Conversation is the in-memory log shared by every request.
type Conversation struct {
	mu       sync.RWMutex
	messages []string
	version  uint64
	saved    uint64
}

// NewConversation starts a conversation from previously stored messages.
func NewConversation(messages []string) *Conversation {
	return &Conversation{messages: append([]string(nil), messages...)}
}

// Append records a prompt and its reply.
func (c *Conversation) Append(user, reply string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, user, reply)
	c.version++
}

// Messages returns a copy of the log.
func (c *Conversation) Messages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.messages...)
}

// Exchanges pairs up the log. A trailing prompt without a reply gets an
// empty Bot field.
func (c *Conversation) Exchanges() []Exchange {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Exchange, 0, (len(c.messages)+1)/2)
	for i := 0; i < len(c.messages); i += 2 {
		ex := Exchange{User: c.messages[i]}
		if i+1 < len(c.messages) {
			ex.Bot = c.messages[i+1]
		}
		out = append(out, ex)
	}
	return out
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// Dirty reports whether messages were appended since the last MarkSaved.
func (c *Conversation) Dirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version != c.saved
}

// Snapshot returns the log together with a version for MarkSaved.
func (c *Conversation) Snapshot() ([]string, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.messages...), c.version
}

// MarkSaved records that the snapshot at version has been persisted.
func (c *Conversation) MarkSaved(version uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version > c.saved {
		c.saved = version
	}
}

// Save persists the current log to store if it changed.
func (c *Conversation) Save(ctx context.Context, store Store) error {
	messages, version := c.Snapshot()
	c.mu.RLock()
	clean := version == c.saved
	c.mu.RUnlock()
	if clean {
		return nil
	}
	if err := store.Save(ctx, messages); err != nil {
		return err
	}
	c.MarkSaved(version)
	return nil
}
