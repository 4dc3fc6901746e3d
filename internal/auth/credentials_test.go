package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCredentialFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	store := NewCredentialFile(path)

	// Missing file means no credential, not an error
	token, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on missing file error = %v", err)
	}
	if token != "" {
		t.Errorf("Load() = %q, want empty", token)
	}

	if err := store.Save("t1"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	token, err = store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if token != "t1" {
		t.Errorf("Load() = %q, want t1", token)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	token, err = store.Load()
	if err != nil {
		t.Fatalf("Load() after Clear error = %v", err)
	}
	if token != "" {
		t.Errorf("Load() after Clear = %q, want empty", token)
	}

	// Clearing again is a no-op
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestCredentialFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewCredentialFile(path)
	if _, err := store.Load(); err == nil {
		t.Error("Load() on corrupt file error = nil, want error")
	}
}
