package pushover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNotify_PostsForm(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		got = map[string]string{
			"token":   r.PostForm.Get("token"),
			"user":    r.PostForm.Get("user"),
			"message": r.PostForm.Get("message"),
			"title":   r.PostForm.Get("title"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClientWithURL("app-token", "user-key", server.URL)
	if err := client.Notify(context.Background(), "Nikola Jokić", "Stats for Nikola Jokić: Pontos: 29.6"); err != nil {
		t.Fatalf("Notify error: %v", err)
	}

	want := map[string]string{
		"token":   "app-token",
		"user":    "user-key",
		"message": "Stats for Nikola Jokić: Pontos: 29.6",
		"title":   "NBA Stats: Nikola Jokić",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s: got %q, want %q", k, got[k], v)
		}
	}
}

func TestPushTitle(t *testing.T) {
	tests := []struct {
		name   string
		player string
		want   string
	}{
		{"player", "Stephen Curry", "NBA Stats: Stephen Curry"},
		{"blank", "  ", DefaultTitle},
		{"not found", "Not found: Zzyzx", "NBA Stats: Not found: Zzyzx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pushTitle(tt.player); got != tt.want {
				t.Errorf("pushTitle(%q) = %q, want %q", tt.player, got, tt.want)
			}
		})
	}

	long := pushTitle(strings.Repeat("é", 400))
	if n := len([]rune(long)); n != maxTitleLen {
		t.Errorf("long title: got %d runes, want %d", n, maxTitleLen)
	}
}

func TestNotify_Unconfigured(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	if err := NewClientWithURL("", "user-key", server.URL).Notify(context.Background(), "Stephen Curry", "hi"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if called {
		t.Error("unconfigured client should not call the API")
	}
}

func TestNotify_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	err := NewClientWithURL("t", "u", server.URL).Notify(context.Background(), "Stephen Curry", "hi")
	if err == nil || !strings.Contains(err.Error(), "Stephen Curry") {
		t.Errorf("expected error naming the player, got %v", err)
	}
}
