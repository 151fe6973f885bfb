package metrics

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"chatjpt/internal/models"
	"chatjpt/internal/responder"
)

var (
	keywordLookupDesc = prometheus.NewDesc(
		"chatjpt_keyword_lookups_total",
		"Total keyword lookup count by outcome, persisted across restarts",
		[]string{"keyword", "outcome"},
		nil,
	)
)

// LookupStore persists per-keyword lookup counts.
type LookupStore interface {
	IncrementKeywordLookup(ctx context.Context, keyword, outcome string) error
	GetAllKeywordLookups(ctx context.Context) ([]models.KeywordLookup, error)
}

// KeywordCollector is a custom Prometheus collector that reads keyword lookup
// counts from the database on each scrape.
type KeywordCollector struct {
	store LookupStore
}

// Describe sends the metric descriptor to the channel.
func (c *KeywordCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- keywordLookupDesc
}

// Collect queries the database for all keyword lookups and emits them as counters.
func (c *KeywordCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.store.GetAllKeywordLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect keyword lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			keywordLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Keyword,
			l.Outcome,
		)
	}
}

// Metrics records how prompts were answered.
type Metrics struct {
	responses *prometheus.CounterVec
	tokens    prometheus.Histogram
	store     LookupStore
	wg        sync.WaitGroup
}

// New registers the chat metrics on reg. store may be nil, in which case
// only in-process counters are kept.
func New(reg prometheus.Registerer, store LookupStore) *Metrics {
	m := &Metrics{
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chatjpt_responses_total",
			Help: "Responses produced, by outcome",
		}, []string{"outcome"}),
		tokens: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "chatjpt_prompt_tokens",
			Help:    "Whitespace-separated tokens per prompt",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		store: store,
	}
	reg.MustRegister(m.responses, m.tokens)
	if store != nil {
		reg.MustRegister(&KeywordCollector{store: store})
	}
	return m
}

// Observe records the outcome of answering prompt. Persisting the lookup
// happens in the background.
func (m *Metrics) Observe(prompt string, res responder.Result) {
	if m == nil {
		return
	}

	outcome, keyword := models.OutcomeMatched, res.Keyword
	if res.Fallback {
		outcome, keyword = models.OutcomeFallback, models.FallbackKeyword
	}
	m.responses.WithLabelValues(outcome).Inc()
	m.tokens.Observe(float64(len(strings.Fields(prompt))))

	if m.store == nil {
		return
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.store.IncrementKeywordLookup(context.Background(), keyword, outcome); err != nil {
			slog.Error("failed to record keyword lookup", "keyword", keyword, "outcome", outcome, "error", err)
		}
	}()
}

// Wait blocks until background lookup writes have finished.
func (m *Metrics) Wait() {
	if m == nil {
		return
	}
	m.wg.Wait()
}
