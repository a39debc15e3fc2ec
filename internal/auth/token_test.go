package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileTokenStore(path)

	if err := store.Save("abc123"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "abc123" {
		t.Errorf("Load() = %q, want abc123", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("token file mode = %o, want 600", perm)
	}
}

func TestFileTokenStore_LoadMissingFile(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "" {
		t.Errorf("Load() = %q, want empty for missing file", got)
	}
}

func TestFileTokenStore_LoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("  tok-1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	store := NewFileTokenStore(path)

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "tok-1" {
		t.Errorf("Load() = %q, want tok-1", got)
	}
}

func TestFileTokenStore_ClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileTokenStore(path)

	if err := store.Save("abc"); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	// clearing again with no file must not error
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on missing file error = %v", err)
	}

	got, _ := store.Load()
	if got != "" {
		t.Errorf("Load() after Clear() = %q, want empty", got)
	}
}
