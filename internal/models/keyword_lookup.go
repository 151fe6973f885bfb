package models

import "time"

// Keyword lookup outcome constants
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
)

// FallbackKeyword is the keyword label recorded for prompts that matched nothing.
const FallbackKeyword = "(none)"

// KeywordLookup represents a per-keyword hit count by outcome.
type KeywordLookup struct {
	Keyword    string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
