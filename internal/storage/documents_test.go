package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDocumentStore_SaveAndOverwrite(t *testing.T) {
	dir := t.TempDir()
	s := NewDocumentStore(dir, "/files")

	url, err := s.Save(7, DocSelfie, "me.jpg", strings.NewReader("first"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if url != "/files/documents/7/selfie.jpg" {
		t.Errorf("url = %q", url)
	}

	// Re-upload with the same key overwrites in place.
	if _, err := s.Save(7, DocSelfie, "me.jpg", strings.NewReader("second")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "documents", "7", "selfie.jpg"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
}

func TestDocumentStore_RejectsUnknownType(t *testing.T) {
	s := NewDocumentStore(t.TempDir(), "/files")
	if _, err := s.Save(1, "passport", "p.png", strings.NewReader("x")); err == nil {
		t.Error("expected error for unknown document type")
	}
}
