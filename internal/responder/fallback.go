package responder

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// DefaultVocabulary is the word list used for filler responses.
var DefaultVocabulary = []string{"finance", "report", "yearly", "Microsoft", "company"}

// DefaultMaxWords bounds filler responses to 0..DefaultMaxWords-1 words.
const DefaultMaxWords = 50

// Option configures an Engine.
type Option func(*Engine)

// WithVocabulary replaces the filler word list. An empty list is ignored.
func WithVocabulary(words []string) Option {
	return func(e *Engine) {
		if len(words) == 0 {
			return
		}
		e.fallback.vocabulary = append([]string(nil), words...)
	}
}

// WithMaxWords sets the exclusive upper bound on filler word count.
// Values below 1 are ignored.
func WithMaxWords(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			return
		}
		e.fallback.maxWords = n
	}
}

// WithRand makes filler responses draw from r instead of the engine's own
// generator.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r == nil {
			return
		}
		e.fallback.rng = r
	}
}

type fallback struct {
	vocabulary []string
	maxWords   int

	mu  sync.Mutex
	rng *rand.Rand
}

// newFallback gives every engine its own generator, seeded from the global
// source.
func newFallback() *fallback {
	return &fallback{
		vocabulary: DefaultVocabulary,
		maxWords:   DefaultMaxWords,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func (f *fallback) intN(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rng.IntN(n)
}

// generate returns a random run of vocabulary words. Zero words is valid.
func (f *fallback) generate() string {
	n := f.intN(f.maxWords)
	words := make([]string, n)
	for i := range words {
		words[i] = f.vocabulary[f.intN(len(f.vocabulary))]
	}
	return strings.Join(words, " ")
}
