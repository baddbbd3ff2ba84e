package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInfofCtx_IncludesContextFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Logger{Logger: zap.New(core)}

	ctx := context.WithValue(context.Background(), RequestIdKey, "req-1")
	ctx = context.WithValue(ctx, UsernameKey, "alice")
	l.InfofCtx(ctx, "GET /prompts %d", 200)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-1" {
		t.Fatalf("request_id field missing or wrong: %v", fields["request_id"])
	}
	if fields["username"] != "alice" {
		t.Fatalf("username field missing or wrong: %v", fields["username"])
	}
}

func TestInfofCtx_BareContextAddsNoFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Logger{Logger: zap.New(core)}

	l.InfofCtx(context.Background(), "startup")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if len(entries[0].Context) != 0 {
		t.Fatalf("expected no context fields, got %v", entries[0].ContextMap())
	}
}
