package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUploadStore_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir)
	if err != nil {
		t.Fatalf("NewUploadStore: %v", err)
	}

	data := []byte("image-bytes")
	path, err := store.Save(context.Background(), "leaf.png", data)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("stored bytes differ")
	}
}

func TestUploadStore_RandomizedNamePreservesExtension(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewUploadStore: %v", err)
	}

	p1, err := store.Save(context.Background(), "leaf.PNG", []byte("a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	p2, err := store.Save(context.Background(), "leaf.PNG", []byte("a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if filepath.Ext(p1) != ".png" {
		t.Fatalf("expected .png extension, got %q", filepath.Ext(p1))
	}
	if strings.Contains(filepath.Base(p1), "leaf") {
		t.Fatalf("client-supplied name leaked into %q", p1)
	}
	if p1 == p2 {
		t.Fatalf("expected unique names for repeated uploads")
	}
}

func TestUploadStore_DefaultsToJPG(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewUploadStore: %v", err)
	}

	path, err := store.Save(context.Background(), "noextension", []byte("a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Ext(path) != ".jpg" {
		t.Fatalf("expected .jpg default, got %q", filepath.Ext(path))
	}
}

// A hostile filename must not escape the upload directory.
func TestUploadStore_PathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir)
	if err != nil {
		t.Fatalf("NewUploadStore: %v", err)
	}

	path, err := store.Save(context.Background(), "../../etc/passwd.png", []byte("a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	if !strings.HasPrefix(abs, dir+string(os.PathSeparator)) {
		t.Fatalf("stored file escaped upload dir: %s", abs)
	}
}

func TestNewUploadStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewUploadStore(dir); err != nil {
		t.Fatalf("NewUploadStore: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("upload dir was not created: %v", err)
	}
}
