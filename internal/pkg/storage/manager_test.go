package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBlobName(t *testing.T) {
	name := BlobName("cover.jpg")
	if !strings.HasSuffix(name, "_cover.jpg") {
		t.Fatalf("expected original name suffix, got %q", name)
	}

	prefix := strings.SplitN(name, "_", 2)[0]
	if len(prefix) != 10 {
		t.Fatalf("expected a unix timestamp prefix, got %q", prefix)
	}
}

func TestBlobNameSanitizes(t *testing.T) {
	name := BlobName("my cover photo.png")
	if strings.Contains(name, " ") {
		t.Fatalf("expected spaces to be replaced, got %q", name)
	}

	// Path components in the client-supplied filename must not survive.
	name = BlobName("../../etc/passwd")
	if strings.Contains(name, "/") || strings.Contains(name, "..") {
		t.Fatalf("expected path components to be stripped, got %q", name)
	}
}

func TestStoreExistsDelete(t *testing.T) {
	s := &BlobStorage{baseDir: t.TempDir()}

	relPath, err := s.Store("berita", "1700000000_cover.jpg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if relPath != "berita/1700000000_cover.jpg" {
		t.Fatalf("unexpected relative path %q", relPath)
	}
	if !s.Exists(relPath) {
		t.Fatalf("expected blob to exist after store")
	}

	data, err := os.ReadFile(filepath.Join(s.BaseDir(), "berita", "1700000000_cover.jpg"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Fatalf("blob content mismatch: %q", data)
	}

	if err := s.Delete(relPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Exists(relPath) {
		t.Fatalf("expected blob to be gone after delete")
	}
}

func TestDeleteMissingBlobIsNoop(t *testing.T) {
	s := &BlobStorage{baseDir: t.TempDir()}

	if err := s.Delete("berita/does_not_exist.jpg"); err != nil {
		t.Fatalf("deleting a missing blob should not fail: %v", err)
	}
	if err := s.Delete(""); err != nil {
		t.Fatalf("deleting an empty path should not fail: %v", err)
	}
}

func TestExistsEmptyPath(t *testing.T) {
	s := &BlobStorage{baseDir: t.TempDir()}

	if s.Exists("") {
		t.Fatalf("empty path must never exist")
	}
}
