package models

// RespondRequest is the body of a chat API call.
type RespondRequest struct {
	Prompt string `json:"prompt"`
}

// RespondResponse contains the engine's answer to a prompt.
type RespondResponse struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
	Keyword  string `json:"keyword,omitempty"`
	Count    int    `json:"count"`
	Fallback bool   `json:"fallback"`
}

// ExchangeResponse is one prompt/reply pair of the history API.
type ExchangeResponse struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// HistoryResponse lists the conversation so far.
type HistoryResponse struct {
	Exchanges []ExchangeResponse `json:"exchanges"`
	Total     int                `json:"total"`
}

// KeywordsResponse lists the keywords the engine recognizes.
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
}

// Envelope wraps every JSON API reply. Data is set on success and Error on
// failure.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}
