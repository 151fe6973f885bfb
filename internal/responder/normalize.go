package responder

import (
	"strings"
	"unicode"
)

// Normalize lowercases token and trims every leading and trailing rune that
// is neither a letter nor a digit. Punctuation inside the token is kept, so
// "Q3-report!!" becomes "q3-report". A token with no letters or digits
// normalizes to "".
func Normalize(token string) string {
	return strings.TrimFunc(strings.ToLower(token), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
