package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxImageBytes caps cover image uploads at 2048 KB.
const MaxImageBytes = 2048 * 1024

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// ValidateImageBySniff checks the provided filename (extension) and the first
// bytes (head) against the whitelist of cover image types. Returns the
// detected mime or an error.
func ValidateImageBySniff(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", errors.New("gambar harus berformat JPEG, PNG, JPG, atau GIF")
	}

	detected := http.DetectContentType(head)

	// Block obvious scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", errors.New("tipe file tidak valid: konten HTML tidak diizinkan")
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", errors.New("SVG/XML tidak didukung")
	}

	if allowedMime[detected] {
		return detected, nil
	}

	return "", errors.New("tipe file tidak didukung")
}

// ValidateImageSize rejects files above MaxImageBytes.
func ValidateImageSize(size int64) error {
	if size > MaxImageBytes {
		return errors.New("ukuran gambar maksimal 2048 KB")
	}
	return nil
}
