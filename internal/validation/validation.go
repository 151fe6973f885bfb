package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxPromptLength is the longest prompt, in runes, the chat accepts.
const MaxPromptLength = 4000

// ValidatePrompt trims surrounding whitespace and checks that something is
// left to answer. It returns the trimmed prompt, whether it is acceptable and
// a message for the user when it is not.
func ValidatePrompt(prompt string) (string, bool, string) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return "", false, "Please enter a message"
	}
	if utf8.RuneCountInString(trimmed) > MaxPromptLength {
		return trimmed, false, "Message is too long"
	}
	if !utf8.ValidString(trimmed) {
		return trimmed, false, "Message is not valid UTF-8"
	}
	if strings.IndexFunc(trimmed, isControl) >= 0 {
		return trimmed, false, "Message contains control characters"
	}
	return trimmed, true, ""
}

// isControl matches characters the history stores cannot keep: NUL is
// rejected by Postgres text columns and the ASCII separators delimit
// messages in the history file. Tabs and line breaks are allowed.
func isControl(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	return unicode.IsControl(r)
}

// ValidateKeyword reports whether a seed keyword can ever be matched. Prompts
// are split on whitespace, so a keyword containing whitespace never matches,
// and one without letters or digits normalizes to nothing.
func ValidateKeyword(keyword string) (bool, string) {
	if keyword == "" {
		return false, "keyword is empty"
	}
	if strings.IndexFunc(keyword, unicode.IsSpace) >= 0 {
		return false, "keyword contains whitespace and can never match"
	}
	if strings.IndexFunc(keyword, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) < 0 {
		return false, "keyword has no letters or digits"
	}
	return true, ""
}
