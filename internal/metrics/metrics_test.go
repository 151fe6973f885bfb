package metrics

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"chatjpt/internal/models"
	"chatjpt/internal/responder"
)

type fakeStore struct {
	mu      sync.Mutex
	counts  map[string]int64
	failGet bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{counts: map[string]int64{}}
}

func (f *fakeStore) IncrementKeywordLookup(_ context.Context, keyword, outcome string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[keyword+"\x00"+outcome]++
	return nil
}

func (f *fakeStore) GetAllKeywordLookups(context.Context) ([]models.KeywordLookup, error) {
	if f.failGet {
		return nil, errors.New("db down")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.KeywordLookup
	for k, c := range f.counts {
		parts := strings.SplitN(k, "\x00", 2)
		out = append(out, models.KeywordLookup{Keyword: parts[0], Outcome: parts[1], Count: c})
	}
	return out, nil
}

func TestObserve_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, nil)

	m.Observe("revenue revenue", responder.Result{Keyword: "revenue", Count: 2})
	m.Observe("weather", responder.Result{Fallback: true})
	m.Observe("rain", responder.Result{Fallback: true})

	if got := testutil.ToFloat64(m.responses.WithLabelValues(models.OutcomeMatched)); got != 1 {
		t.Errorf("matched = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.responses.WithLabelValues(models.OutcomeFallback)); got != 2 {
		t.Errorf("fallback = %v, want 2", got)
	}
	if n := testutil.CollectAndCount(m.tokens); n != 1 {
		t.Errorf("token histogram series = %d, want 1", n)
	}
}

func TestObserve_PersistsLookups(t *testing.T) {
	reg := prometheus.NewRegistry()
	store := newFakeStore()
	m := New(reg, store)

	m.Observe("revenue", responder.Result{Keyword: "revenue", Count: 1})
	m.Observe("revenue?", responder.Result{Keyword: "revenue", Count: 1})
	m.Observe("weather", responder.Result{Fallback: true})
	m.Wait()

	if got := store.counts["revenue\x00"+models.OutcomeMatched]; got != 2 {
		t.Errorf("revenue matched = %d, want 2", got)
	}
	if got := store.counts[models.FallbackKeyword+"\x00"+models.OutcomeFallback]; got != 1 {
		t.Errorf("fallback = %d, want 1", got)
	}

	if n := testutil.CollectAndCount(&KeywordCollector{store: store}, "chatjpt_keyword_lookups_total"); n != 2 {
		t.Errorf("keyword lookup series = %d, want 2", n)
	}
}

func TestKeywordCollector_StoreError(t *testing.T) {
	store := newFakeStore()
	store.failGet = true
	if n := testutil.CollectAndCount(&KeywordCollector{store: store}); n != 0 {
		t.Errorf("series on error = %d, want 0", n)
	}
}

func TestObserve_NilMetrics(t *testing.T) {
	var m *Metrics
	m.Observe("anything", responder.Result{Fallback: true})
	m.Wait()
}
