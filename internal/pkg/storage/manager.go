package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wartapedia/portal-berita/internal/pkg/env"
)

// BlobStorage stores uploaded images on the local public disk and exposes
// the store/delete/exists contract the API relies on. Entities reference
// blobs by relative path (e.g. "berita/1700000000_cover.jpg").
type BlobStorage struct {
	baseDir string
	mirror  *S3Mirror
}

var defaultStorage *BlobStorage

// SetupStorage initializes the default blob storage and, when configured,
// the S3 mirror.
func SetupStorage() {
	defaultStorage = &BlobStorage{
		baseDir: env.GetEnv("UPLOAD_DIR", "./uploads"),
		mirror:  NewS3MirrorFromEnv(),
	}
}

// GetStorage returns the default blob storage instance.
func GetStorage() *BlobStorage {
	if defaultStorage == nil {
		SetupStorage()
	}
	return defaultStorage
}

// BlobName builds a collision-resistant blob name by prefixing the original
// filename with the current unix timestamp.
func BlobName(original string) string {
	base := filepath.Base(original)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%d_%s", time.Now().Unix(), base)
}

// Store writes src under subdir using the given blob name and returns the
// relative path to reference in entities.
func (s *BlobStorage) Store(subdir, name string, src io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	relPath := filepath.ToSlash(filepath.Join(subdir, name))
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(relPath))

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	if s.mirror != nil {
		// Mirroring never blocks or fails the request path.
		go func() {
			if err := s.mirror.Upload(relPath, fullPath); err != nil {
				log.Printf("[storage] s3 mirror upload failed for %s: %v", relPath, err)
			}
		}()
	}

	return relPath, nil
}

// Exists reports whether the blob at relPath is present on disk.
func (s *BlobStorage) Exists(relPath string) bool {
	if relPath == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
	return err == nil
}

// Delete removes the blob at relPath. Deleting a missing blob is not an
// error.
func (s *BlobStorage) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if s.mirror != nil {
		go func() {
			if err := s.mirror.Delete(relPath); err != nil {
				log.Printf("[storage] s3 mirror delete failed for %s: %v", relPath, err)
			}
		}()
	}

	return nil
}

// BaseDir returns the root directory served as the public blob path.
func (s *BlobStorage) BaseDir() string {
	return s.baseDir
}
