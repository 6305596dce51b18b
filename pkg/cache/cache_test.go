package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestFileStore_GetSet(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	ctx := context.Background()

	if err := s.Set(ctx, "snapshot", []byte(`{"projects":[]}`), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, ok, err := s.Get(ctx, "snapshot")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Get returned miss for existing key")
	}
	if string(data) != `{"projects":[]}` {
		t.Errorf("got %q, want original payload", data)
	}
}

func TestFileStore_Miss(t *testing.T) {
	s, _ := NewFileStore(t.TempDir())

	_, ok, err := s.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("Get returned hit for missing key")
	}
}

func TestFileStore_Expiration(t *testing.T) {
	s, _ := NewFileStore(t.TempDir())
	ctx := context.Background()

	if err := s.Set(ctx, "key", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	_, ok, err := s.Get(ctx, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("Get returned hit for expired key")
	}
}

func TestFileStore_CorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	s, _ := NewFileStore(dir)
	ctx := context.Background()

	if err := s.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Corrupt the entry on disk.
	hash := Hash([]byte("key"))
	path := filepath.Join(dir, hash[:2], hash[2:]+".json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, ok, err := s.Get(ctx, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("corrupt entry should read as a miss")
	}
}

func TestFileStore_Delete(t *testing.T) {
	s, _ := NewFileStore(t.TempDir())
	ctx := context.Background()

	_ = s.Set(ctx, "key", []byte("value"), 0)
	if err := s.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "key"); ok {
		t.Error("key still present after Delete")
	}

	// Deleting a missing key is not an error.
	if err := s.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete of missing key failed: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	data, ok, err := s.Get(ctx, "key")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v; want hit", ok, err)
	}
	if string(data) != "value" {
		t.Errorf("got %q, want %q", data, "value")
	}

	_ = s.Delete(ctx, "key")
	if _, ok, _ := s.Get(ctx, "key"); ok {
		t.Error("key still present after Delete")
	}
}

func TestMemoryStore_Expiration(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }

	_ = s.Set(ctx, "key", []byte("value"), 5*time.Minute)

	if _, ok, _ := s.Get(ctx, "key"); !ok {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(6 * time.Minute)
	if _, ok, _ := s.Get(ctx, "key"); ok {
		t.Error("expected miss after expiry")
	}
}

func TestNullStore(t *testing.T) {
	s := NewNullStore()
	ctx := context.Background()

	if err := s.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "key"); ok {
		t.Error("null store should never return a hit")
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s, err := NewRedisStore(ctx, mr.Addr())
	if err != nil {
		t.Fatalf("NewRedisStore failed: %v", err)
	}
	defer s.Close()

	if err := s.Set(ctx, "snapshot", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	data, ok, err := s.Get(ctx, "snapshot")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v; want hit", ok, err)
	}
	if string(data) != "payload" {
		t.Errorf("got %q, want %q", data, "payload")
	}

	// TTL expiry via miniredis clock.
	mr.FastForward(2 * time.Minute)
	if _, ok, _ := s.Get(ctx, "snapshot"); ok {
		t.Error("expected miss after TTL elapsed")
	}

	if err := s.Delete(ctx, "snapshot"); err != nil {
		t.Errorf("Delete failed: %v", err)
	}
}

func TestRedisStore_BadAddr(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "127.0.0.1:1")
	if err == nil {
		t.Fatal("expected connection error")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("test"))
	h2 := Hash([]byte("test"))
	if h1 != h2 {
		t.Error("hash should be deterministic")
	}
	if len(h1) != 64 {
		t.Errorf("got %d hex chars, want 64", len(h1))
	}
	if Hash([]byte("other")) == h1 {
		t.Error("different inputs should produce different hashes")
	}
}
