package session

import (
	"testing"
	"time"
)

func TestCookieToken_RoundTrip(t *testing.T) {
	key := []byte("test-signing-key")
	tok, err := IssueCookieToken(key, "user-1", "upstream-secret", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	secret, ok := ParseCookieToken(key, tok)
	if !ok || secret != "upstream-secret" {
		t.Fatalf("round trip failed: ok=%v secret=%q", ok, secret)
	}
}

func TestCookieToken_Expired(t *testing.T) {
	key := []byte("test-signing-key")
	tok, err := IssueCookieToken(key, "user-1", "s", time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, ok := ParseCookieToken(key, tok); ok {
		t.Fatal("expired token must read as no session")
	}
}

func TestCookieToken_WrongKey(t *testing.T) {
	tok, err := IssueCookieToken([]byte("key-a"), "user-1", "s", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, ok := ParseCookieToken([]byte("key-b"), tok); ok {
		t.Fatal("token signed with another key must be rejected")
	}
}

func TestCookieToken_Garbage(t *testing.T) {
	if _, ok := ParseCookieToken([]byte("key"), "not-a-jwt"); ok {
		t.Fatal("garbage must read as no session")
	}
}
