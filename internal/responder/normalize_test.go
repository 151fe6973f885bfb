package responder

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"plain", "report", "report"},
		{"uppercase", "REPORT", "report"},
		{"trailing punctuation", "Report!!", "report"},
		{"leading punctuation", "\"(revenue", "revenue"},
		{"internal hyphen kept", "Q3-report", "q3-report"},
		{"internal apostrophe kept", "company's,", "company's"},
		{"digits", "2023.", "2023"},
		{"all punctuation", "?!...", ""},
		{"empty", "", ""},
		{"unicode letters", "¡Año!", "año"},
		{"percent trimmed", "5%", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.token); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	tokens := []string{"Report!!", "Q3-report", "...", "MiXeD-Case?", "a", "x.y.z"}
	for _, tok := range tokens {
		once := Normalize(tok)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", tok, twice, once)
		}
	}
}
