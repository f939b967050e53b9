package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInfoCarriesContextFields(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "checkout", Output: &buf})

	ctx := logg.WithSessionID(context.Background(), "sess-1")
	ctx = logg.WithCheckoutStep(ctx, "payment")
	logg.Info(ctx, "payment.confirm")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json log line: %v", err)
	}
	if entry["service"] != "checkout" {
		t.Fatalf("expected service field, got %v", entry["service"])
	}
	if entry["session_id"] != "sess-1" {
		t.Fatalf("expected session_id field, got %v", entry["session_id"])
	}
	if entry["checkout_step"] != "payment" {
		t.Fatalf("expected checkout_step field, got %v", entry["checkout_step"])
	}
}

func TestErrorIncludesErrAndStack(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "checkout", Output: &buf})

	logg.Error(context.Background(), "boom", errors.New("provider down"))

	line := buf.String()
	if !strings.Contains(line, "provider down") {
		t.Fatalf("expected error message in output: %s", line)
	}
	if !strings.Contains(line, "stack") {
		t.Fatalf("expected stack field in output: %s", line)
	}
}

func TestParseLevel(t *testing.T) {
	if lvl := ParseLevel("debug"); lvl != zerolog.DebugLevel {
		t.Fatalf("expected debug, got %s", lvl)
	}
	if lvl := ParseLevel("  WARN "); lvl != zerolog.WarnLevel {
		t.Fatalf("expected warn, got %s", lvl)
	}
	if lvl := ParseLevel("nonsense"); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %s", lvl)
	}
}
