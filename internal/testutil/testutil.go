// Package testutil provides test utilities and helpers.
package testutil

import (
	"testing"

	"chatjpt/internal/chat"
	"chatjpt/internal/history"
	"chatjpt/internal/responder"
)

// EarningsPairs is a small keyword table used across tests.
var EarningsPairs = []string{
	"revenue", "Revenue rose 5%.",
	"loss", "Loss narrowed.",
}

// Engine builds a response engine from pairs, failing the test on error.
func Engine(t *testing.T, pairs []string, opts ...responder.Option) *responder.Engine {
	t.Helper()
	e, err := responder.New(pairs, opts...)
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}
	return e
}

// ChatService builds a chat service over EarningsPairs with the given
// starting history.
func ChatService(t *testing.T, messages []string, obs chat.Observer) *chat.Service {
	t.Helper()
	return chat.NewService(Engine(t, EarningsPairs), history.NewConversation(messages), obs)
}
