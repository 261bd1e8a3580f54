package config

import (
	"testing"
	"time"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	if got := GetString(c, "PORT", "8080"); got != "9090" {
		t.Fatalf("GetString(PORT) = %q, want %q", got, "9090")
	}
	if got := GetString(c, "MISSING", "8080"); got != "8080" {
		t.Fatalf("GetString(MISSING) = %q, want default", got)
	}
	if got := GetString(c, "EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("GetString(EMPTY) = %q, want fallback", got)
	}
	if got := GetString(nil, "PORT", "8080"); got != "8080" {
		t.Fatalf("GetString(nil map) = %q, want default", got)
	}
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "42", "BAD": "forty-two"}

	if got := GetInt(c, "TIMEOUT", 7); got != 42 {
		t.Fatalf("GetInt(TIMEOUT) = %d, want 42", got)
	}
	if got := GetInt(c, "BAD", 7); got != 7 {
		t.Fatalf("GetInt(BAD) = %d, want default", got)
	}
	if got := GetInt(c, "MISSING", 7); got != 7 {
		t.Fatalf("GetInt(MISSING) = %d, want default", got)
	}
}

func TestGetSeconds(t *testing.T) {
	c := map[string]string{"READ_TIMEOUT_SECONDS": "15"}

	if got := GetSeconds(c, "READ_TIMEOUT_SECONDS", 30); got != 15*time.Second {
		t.Fatalf("GetSeconds() = %v, want 15s", got)
	}
	if got := GetSeconds(c, "MISSING", 30); got != 30*time.Second {
		t.Fatalf("GetSeconds(MISSING) = %v, want 30s", got)
	}
}

func TestGetStrings(t *testing.T) {
	c := map[string]string{
		"ORIGINS": "https://a.example, https://b.example,,",
	}

	got := GetStrings(c, "ORIGINS")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("GetStrings() = %v", got)
	}
	if got := GetStrings(c, "MISSING"); got != nil {
		t.Fatalf("GetStrings(MISSING) = %v, want nil", got)
	}
}
