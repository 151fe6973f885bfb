// Package chat runs one conversation turn: it checks the prompt, asks the
// engine for a reply and records the exchange.
package chat

import (
	"chatjpt/internal/history"
	"chatjpt/internal/responder"
	"chatjpt/internal/validation"
)

// Responder answers prompts. *responder.Engine satisfies it.
type Responder interface {
	Match(prompt string) responder.Result
	Keywords() []string
}

// Observer is told about every answered prompt. *metrics.Metrics satisfies it.
type Observer interface {
	Observe(prompt string, res responder.Result)
}

// InvalidPromptError is returned when a prompt is rejected before reaching
// the engine.
type InvalidPromptError struct {
	Reason string
}

func (e *InvalidPromptError) Error() string {
	return "invalid prompt: " + e.Reason
}

// Reply is the outcome of one turn.
type Reply struct {
	Prompt string // trimmed prompt as recorded in the history
	responder.Result
}

// Service owns the engine and the conversation for the lifetime of the process.
type Service struct {
	engine       Responder
	conversation *history.Conversation
	observer     Observer
}

// NewService creates a chat service. observer may be nil.
func NewService(engine Responder, conversation *history.Conversation, observer Observer) *Service {
	return &Service{
		engine:       engine,
		conversation: conversation,
		observer:     observer,
	}
}

// Ask answers prompt and appends the exchange to the conversation.
func (s *Service) Ask(prompt string) (Reply, error) {
	trimmed, ok, reason := validation.ValidatePrompt(prompt)
	if !ok {
		return Reply{}, &InvalidPromptError{Reason: reason}
	}

	res := s.engine.Match(trimmed)
	s.conversation.Append(trimmed, res.Response)
	if s.observer != nil {
		s.observer.Observe(trimmed, res)
	}

	return Reply{Prompt: trimmed, Result: res}, nil
}

// Exchanges returns the conversation so far.
func (s *Service) Exchanges() []history.Exchange {
	return s.conversation.Exchanges()
}

// Keywords returns the keywords the engine recognizes.
func (s *Service) Keywords() []string {
	return s.engine.Keywords()
}

// Conversation exposes the underlying log for persistence.
func (s *Service) Conversation() *history.Conversation {
	return s.conversation
}
