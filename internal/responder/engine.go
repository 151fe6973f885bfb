// Package responder maps free-form prompts to canned responses using a
// keyword table. The table is built once and never changes afterwards, so an
// Engine can be shared by any number of goroutines.
package responder

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ErrInvalidSeedData is returned by New when the seed sequence cannot be
// turned into a keyword table.
var ErrInvalidSeedData = errors.New("invalid seed data")

// Result describes how a prompt was answered.
type Result struct {
	Keyword  string // winning keyword, empty on fallback
	Count    int    // occurrences of Keyword in the prompt
	Response string
	Fallback bool
}

// Engine answers prompts from an immutable keyword table.
type Engine struct {
	table    map[string]string
	keywords []string // sorted; ties resolve to the first entry
	skipped  []string
	fallback *fallback
}

// New builds an Engine from alternating keyword, response strings.
// Keywords are normalized before insertion and a later duplicate replaces an
// earlier one. A keyword with no letters or digits can never match a token;
// it is left out of the table and reported by Skipped. An empty sequence
// yields an engine that always falls back.
func New(pairs []string, opts ...Option) (*Engine, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: %d strings, keyword %q has no response",
			ErrInvalidSeedData, len(pairs), pairs[len(pairs)-1])
	}

	table := make(map[string]string, len(pairs)/2)
	var skipped []string
	for i := 0; i < len(pairs); i += 2 {
		keyword := Normalize(pairs[i])
		if keyword == "" {
			skipped = append(skipped, pairs[i])
			continue
		}
		table[keyword] = pairs[i+1]
	}

	keywords := make([]string, 0, len(table))
	for k := range table {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	e := &Engine{
		table:    table,
		keywords: keywords,
		skipped:  skipped,
		fallback: newFallback(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Respond returns the reply for prompt. It never fails: prompts without a
// known keyword get a filler response.
func (e *Engine) Respond(prompt string) string {
	return e.Match(prompt).Response
}

// Match answers prompt and reports which keyword, if any, decided the reply.
// The keyword seen most often wins; ties go to the lexicographically smallest
// keyword.
func (e *Engine) Match(prompt string) Result {
	counts := make(map[string]int, len(e.table))
	for k := range e.table {
		counts[k] = 0
	}

	for _, token := range strings.FieldsFunc(prompt, isSeparator) {
		word := Normalize(token)
		if _, ok := counts[word]; ok {
			counts[word]++
		}
	}

	var best string
	bestCount := 0
	for _, k := range e.keywords {
		if counts[k] > bestCount {
			best = k
			bestCount = counts[k]
		}
	}

	if bestCount == 0 {
		return Result{Response: e.fallback.generate(), Fallback: true}
	}
	return Result{Keyword: best, Count: bestCount, Response: e.table[best]}
}

// isSeparator splits prompt tokens on Unicode white space and on the ASCII
// file, group, record and unit separators.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Skipped returns the seed keywords that were left out because they have no
// letters or digits, in seed order.
func (e *Engine) Skipped() []string {
	return append([]string(nil), e.skipped...)
}

// Lookup returns the response stored for an already-normalized keyword.
func (e *Engine) Lookup(keyword string) (string, bool) {
	r, ok := e.table[keyword]
	return r, ok
}

// Keywords returns the known keywords in sorted order.
func (e *Engine) Keywords() []string {
	out := make([]string, len(e.keywords))
	copy(out, e.keywords)
	return out
}

// Len returns the number of keywords in the table.
func (e *Engine) Len() int {
	return len(e.table)
}
