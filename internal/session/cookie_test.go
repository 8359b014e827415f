package session

import (
	"errors"
	"testing"
	"time"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	value, err := codec.Issue("sid-42", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	sid, err := codec.Parse(value)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sid != "sid-42" {
		t.Fatalf("sid = %q", sid)
	}
}

func TestCodecRejectsWrongSecret(t *testing.T) {
	value, err := NewCodec("secret-a").Issue("sid-42", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewCodec("secret-b").Parse(value); !errors.Is(err, ErrInvalidCookie) {
		t.Fatalf("expected ErrInvalidCookie, got %v", err)
	}
}

func TestCodecRejectsExpiredCookie(t *testing.T) {
	codec := NewCodec("test-secret")

	value, err := codec.Issue("sid-42", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := codec.Parse(value); !errors.Is(err, ErrInvalidCookie) {
		t.Fatalf("expected ErrInvalidCookie, got %v", err)
	}
}

func TestCodecRejectsGarbage(t *testing.T) {
	if _, err := NewCodec("test-secret").Parse("not-a-jwt"); !errors.Is(err, ErrInvalidCookie) {
		t.Fatalf("expected ErrInvalidCookie, got %v", err)
	}
}
