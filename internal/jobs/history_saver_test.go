package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"chatjpt/internal/history"
)

type recordingStore struct {
	mu    sync.Mutex
	saves [][]string
	err   error
}

func (s *recordingStore) Load(context.Context) ([]string, error) { return nil, nil }

func (s *recordingStore) Save(_ context.Context, messages []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saves = append(s.saves, messages)
	return nil
}

func (s *recordingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saves)
}

func TestHistorySaver_FlushOnlyWhenDirty(t *testing.T) {
	conv := history.NewConversation(nil)
	store := &recordingStore{}
	saver := NewHistorySaver(conv, store, time.Hour)

	if err := saver.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if store.count() != 0 {
		t.Errorf("saved %d times on a clean log, want 0", store.count())
	}

	conv.Append("revenue?", "Revenue rose 5%.")
	if err := saver.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if store.count() != 1 {
		t.Errorf("saved %d times, want 1", store.count())
	}
}

func TestHistorySaver_FlushError(t *testing.T) {
	conv := history.NewConversation(nil)
	conv.Append("a", "b")
	store := &recordingStore{err: errors.New("disk full")}
	saver := NewHistorySaver(conv, store, time.Hour)

	if err := saver.Flush(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !conv.Dirty() {
		t.Error("failed save should leave the log dirty")
	}
}

func TestHistorySaver_SavesOnStop(t *testing.T) {
	conv := history.NewConversation(nil)
	store := &recordingStore{}
	saver := NewHistorySaver(conv, store, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		saver.Start(ctx)
		close(done)
	}()

	conv.Append("bye", "company report")
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("saver did not stop")
	}

	if store.count() != 1 {
		t.Fatalf("saved %d times, want 1", store.count())
	}
	if got := store.saves[0]; len(got) != 2 || got[0] != "bye" {
		t.Errorf("saved %v", got)
	}
}

func TestHistorySaver_PeriodicSave(t *testing.T) {
	conv := history.NewConversation(nil)
	store := &recordingStore{}
	saver := NewHistorySaver(conv, store, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go saver.Start(ctx)

	conv.Append("q", "a")
	deadline := time.Now().Add(5 * time.Second)
	for store.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if store.count() == 0 {
		t.Fatal("expected a periodic save")
	}
}
