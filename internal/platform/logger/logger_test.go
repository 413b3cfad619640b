package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestJSONLogger_WritesFieldsAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "health-companion", Out: &buf})

	l.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be filtered, got %q", buf.String())
	}

	l.With(map[string]any{"request_id": "r-1"}).Warn("record not found", map[string]any{
		"id":  "m-1",
		"err": errors.New("not found"),
		"":    "ignored",
	})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" || entry["message"] != "record not found" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if entry["app"] != "health-companion" || entry["request_id"] != "r-1" || entry["id"] != "m-1" {
		t.Fatalf("missing fields: %#v", entry)
	}
	if entry["err"] != "not found" {
		t.Fatalf("expected error rendered as string, got %#v", entry["err"])
	}
}

func TestTextLogger_IsHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatText, Out: &buf})
	l.Info("server started", map[string]any{"addr": ":8080"})

	out := buf.String()
	if !strings.Contains(out, "server started") || !strings.Contains(out, "addr=:8080") {
		t.Fatalf("unexpected text output: %q", out)
	}
}
