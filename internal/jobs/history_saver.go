package jobs

import (
	"context"
	"log"
	"time"

	"chatjpt/internal/history"
)

// HistorySaver periodically flushes the conversation log to its store.
type HistorySaver struct {
	conversation *history.Conversation
	store        history.Store
	interval     time.Duration
}

// NewHistorySaver creates a new history saver.
func NewHistorySaver(conversation *history.Conversation, store history.Store, interval time.Duration) *HistorySaver {
	return &HistorySaver{
		conversation: conversation,
		store:        store,
		interval:     interval,
	}
}

// Start runs the save loop until ctx is done, then saves one last time.
func (h *HistorySaver) Start(ctx context.Context) {
	log.Printf("History saver started (interval: %v)", h.interval)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// The request context is gone; give the final write its own deadline.
			flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			h.Flush(flushCtx)
			cancel()
			log.Println("History saver stopped")
			return
		case <-ticker.C:
			h.Flush(ctx)
		}
	}
}

// Flush saves the conversation if it changed since the last save.
func (h *HistorySaver) Flush(ctx context.Context) error {
	if !h.conversation.Dirty() {
		return nil
	}
	if err := h.conversation.Save(ctx, h.store); err != nil {
		log.Printf("History saver: failed to save %d messages: %v", h.conversation.Len(), err)
		return err
	}
	return nil
}
