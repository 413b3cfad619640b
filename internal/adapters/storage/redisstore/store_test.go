package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestStore_SetGetDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	s := New(Options{Addr: mr.Addr()})
	defer s.Close()
	ctx := context.Background()

	if err := s.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	if _, ok, err := s.Get(ctx, "user:1"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "user:1", `{"id":"1","name":"John Doe"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("hc:user:1") {
		t.Fatalf("expected prefixed key in redis")
	}

	v, ok, err := s.Get(ctx, "user:1")
	if err != nil || !ok || v != `{"id":"1","name":"John Doe"}` {
		t.Fatalf("unexpected get: %q ok=%v err=%v", v, ok, err)
	}

	if err := s.Delete(ctx, "user:1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, "user:1"); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
	if _, ok, _ := s.Get(ctx, "user:1"); ok {
		t.Fatalf("expected key deleted")
	}
}

func TestStore_TTL(t *testing.T) {
	mr := miniredis.RunT(t)
	s := New(Options{Addr: mr.Addr(), Prefix: "test:", TTL: time.Minute})
	defer s.Close()
	ctx := context.Background()

	_ = s.Set(ctx, "revoked:abc", "user-1")
	if ttl := mr.TTL("test:revoked:abc"); ttl != time.Minute {
		t.Fatalf("expected ttl of one minute, got %v", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, ok, _ := s.Get(ctx, "revoked:abc"); ok {
		t.Fatalf("expected key expired")
	}
}

func TestStore_SetWithTTL_OverridesDefault(t *testing.T) {
	mr := miniredis.RunT(t)
	s := New(Options{Addr: mr.Addr(), Prefix: "test:", TTL: time.Minute})
	defer s.Close()
	ctx := context.Background()

	if err := s.SetWithTTL(ctx, "revoked:jti", "user-1", 2*time.Hour); err != nil {
		t.Fatalf("SetWithTTL: %v", err)
	}
	if ttl := mr.TTL("test:revoked:jti"); ttl != 2*time.Hour {
		t.Fatalf("expected ttl of two hours, got %v", ttl)
	}

	mr.FastForward(time.Hour)
	if _, ok, _ := s.Get(ctx, "revoked:jti"); !ok {
		t.Fatalf("expected key alive past the default ttl")
	}
}

func TestStore_GetErrorWhenServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	s := New(Options{Addr: mr.Addr()})
	defer s.Close()

	mr.Close()
	if _, _, err := s.Get(context.Background(), "user:1"); err == nil {
		t.Fatalf("expected error with redis down")
	}
}
