package models

import "testing"

func TestRoleAt(t *testing.T) {
	tests := []struct {
		position int64
		expected string
	}{
		{0, AuthorUser},
		{1, AuthorBot},
		{2, AuthorUser},
		{41, AuthorBot},
	}

	for _, tt := range tests {
		if got := RoleAt(tt.position); got != tt.expected {
			t.Errorf("RoleAt(%d) = %q, want %q", tt.position, got, tt.expected)
		}
	}
}

func TestMessage_IsUser(t *testing.T) {
	if !(&Message{Role: AuthorUser}).IsUser() {
		t.Error("user message should report IsUser")
	}
	if (&Message{Role: AuthorBot}).IsUser() {
		t.Error("bot message should not report IsUser")
	}
}

func TestUser_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		user     *User
		expected string
	}{
		{"nil user", nil, ""},
		{"name wins", &User{Sub: "s", Email: "e@example.com", Name: "Grace"}, "Grace"},
		{"email next", &User{Sub: "s", Email: "e@example.com"}, "e@example.com"},
		{"sub last", &User{Sub: "s"}, "s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestOutcomeConstants(t *testing.T) {
	if OutcomeMatched != "matched" {
		t.Errorf("OutcomeMatched = %q, want %q", OutcomeMatched, "matched")
	}
	if OutcomeFallback != "fallback" {
		t.Errorf("OutcomeFallback = %q, want %q", OutcomeFallback, "fallback")
	}
}
