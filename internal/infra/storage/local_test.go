package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "http://localhost:5000/")
	if err != nil {
		t.Fatalf("new local: %v", err)
	}

	url, err := store.Put(context.Background(), "services/1/abc.webp", "image/webp", []byte("data"))
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if url != "http://localhost:5000/uploads/services/1/abc.webp" {
		t.Fatalf("unexpected url %s", url)
	}

	got, err := os.ReadFile(filepath.Join(dir, "services", "1", "abc.webp"))
	if err != nil || string(got) != "data" {
		t.Fatalf("expected file on disk, got %q (%v)", got, err)
	}
}

func TestLocalStoreKeepsKeysInsideDir(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewLocal(dir, "")

	if _, err := store.Put(context.Background(), "../../escape.webp", "image/webp", []byte("x")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.webp")); err != nil {
		t.Fatalf("expected traversal to be flattened into dir: %v", err)
	}
}
