package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fixture struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func TestPutGetDelete(t *testing.T) {
	cache := New(filepath.Join(t.TempDir(), "session.json"))

	if err := cache.Put("ams_user", fixture{Name: "Zian Chen", Role: "Super Admin"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got fixture
	if err := cache.Get("ams_user", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Zian Chen" || got.Role != "Super Admin" {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}

	if err := cache.Delete("ams_user"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := cache.Get("ams_user", &got); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGetMissingKey(t *testing.T) {
	cache := New(filepath.Join(t.TempDir(), "session.json"))
	var got fixture
	if err := cache.Get("ams_user", &got); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := New(path).Put("ams_user", fixture{Name: "Eswar HR"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got fixture
	if err := New(path).Get("ams_user", &got); err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Name != "Eswar HR" {
		t.Fatalf("expected persisted value, got %+v", got)
	}
}

func TestCorruptFileIsDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("not-json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cache := New(path)
	var got fixture
	if err := cache.Get("ams_user", &got); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on corrupt cache, got %v", err)
	}
	if err := cache.Put("ams_user", fixture{Name: "Zian Chen"}); err != nil {
		t.Fatalf("put after corrupt cache: %v", err)
	}
}
