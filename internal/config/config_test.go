package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SEED_FILE", "HISTORY_FILE", "HISTORY_BACKEND", "HISTORY_SAVE_INTERVAL", "RATE_LIMIT_MAX", "OIDC_ISSUER"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.SeedFile != "keyword_response.txt" {
		t.Errorf("SeedFile = %q, want %q", cfg.SeedFile, "keyword_response.txt")
	}
	if cfg.HistoryFile != "conversation_history.txt" {
		t.Errorf("HistoryFile = %q, want %q", cfg.HistoryFile, "conversation_history.txt")
	}
	if cfg.SaveInterval != 30*time.Second {
		t.Errorf("SaveInterval = %v, want 30s", cfg.SaveInterval)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %d, want 100", cfg.RateLimitMax)
	}
	if cfg.AuthEnabled() {
		t.Error("AuthEnabled() should be false without OIDC_ISSUER")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HISTORY_SAVE_INTERVAL", "5s")
	t.Setenv("RATE_LIMIT_MAX", "7")
	t.Setenv("OIDC_ISSUER", "https://issuer.example.com")

	cfg := Load()
	if cfg.SaveInterval != 5*time.Second {
		t.Errorf("SaveInterval = %v, want 5s", cfg.SaveInterval)
	}
	if cfg.RateLimitMax != 7 {
		t.Errorf("RateLimitMax = %d, want 7", cfg.RateLimitMax)
	}
	if !cfg.AuthEnabled() {
		t.Error("AuthEnabled() should be true with OIDC_ISSUER")
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("HISTORY_SAVE_INTERVAL", "soon")
	t.Setenv("RATE_LIMIT_MAX", "-3")

	cfg := Load()
	if cfg.SaveInterval != 30*time.Second {
		t.Errorf("SaveInterval = %v, want 30s", cfg.SaveInterval)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %d, want 100", cfg.RateLimitMax)
	}
}

func TestUsePostgresHistory(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		dbURL    string
		expected bool
	}{
		{"file backend", "file", "postgres://x", false},
		{"postgres without url", "postgres", "", false},
		{"postgres with url", "postgres", "postgres://x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{HistoryBackend: tt.backend, DatabaseURL: tt.dbURL}
			if got := cfg.UsePostgresHistory(); got != tt.expected {
				t.Errorf("UsePostgresHistory() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
fallback:
  vocabulary: [finance, report, yearly, Contoso, company]
  max_words: 20
keywords:
  - keyword: revenue
    response: Revenue rose 5%.
  - keyword: loss
    response: Loss narrowed.
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadYAMLConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadYAMLConfigFrom() error = %v", err)
	}
	if got := cfg.FallbackMaxWords(); got != 20 {
		t.Errorf("FallbackMaxWords() = %d, want 20", got)
	}
	if got := cfg.FallbackVocabulary(); len(got) != 5 || got[3] != "Contoso" {
		t.Errorf("FallbackVocabulary() = %v", got)
	}
	want := []string{"revenue", "Revenue rose 5%.", "loss", "Loss narrowed."}
	got := cfg.Pairs()
	if len(got) != len(want) {
		t.Fatalf("Pairs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pairs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadYAMLConfigMissing(t *testing.T) {
	cfg, err := LoadYAMLConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadYAMLConfigFrom() error = %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
	// Accessors are nil-safe.
	if cfg.Pairs() != nil || cfg.FallbackVocabulary() != nil || cfg.FallbackMaxWords() != 0 {
		t.Error("nil YAMLConfig accessors should return zero values")
	}
}
