package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
)

func TestNewContactNotifierDisabledWithoutConfig(t *testing.T) {
	if n := NewContactNotifier(nil); n != nil {
		t.Fatal("NewContactNotifier(nil) != nil, want disabled")
	}
	if n := NewContactNotifier(map[string]string{"RESEND_API_KEY": "key"}); n != nil {
		t.Fatal("NewContactNotifier without recipient != nil, want disabled")
	}
	if n := NewContactNotifier(map[string]string{"CONTACT_NOTIFY_EMAIL": "me@example.com"}); n != nil {
		t.Fatal("NewContactNotifier without api key != nil, want disabled")
	}
}

func TestNotifySendsEmailRequest(t *testing.T) {
	var got ResendEmailRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"id":"email-1"}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	notifier := NewContactNotifier(map[string]string{
		"RESEND_API_KEY":       "test-key",
		"CONTACT_NOTIFY_EMAIL": "owner@example.com",
	})
	if notifier == nil {
		t.Fatal("NewContactNotifier() = nil, want notifier")
	}
	notifier.endpoint = srv.URL

	notifier.Notify(models.Message{
		ID:        7,
		Name:      "Ada",
		Email:     "ada@example.com",
		Message:   "I want a website",
		CreatedAt: time.Now().UTC(),
	})

	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if len(got.To) != 1 || got.To[0] != "owner@example.com" {
		t.Fatalf("to = %v", got.To)
	}
	if got.Subject != "Portfolio contact from Ada" {
		t.Fatalf("subject = %q", got.Subject)
	}
}
