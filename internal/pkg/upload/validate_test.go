package upload

import (
	"testing"
)

var (
	pngHead  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	jpegHead = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F', 0}
	gifHead  = []byte("GIF89a\x00\x00\x00\x00")
	htmlHead = []byte("<html><body><script>alert(1)</script></body></html>")
)

func TestValidateImageBySniffAccepted(t *testing.T) {
	tests := []struct {
		filename string
		head     []byte
		want     string
	}{
		{filename: "cover.png", head: pngHead, want: "image/png"},
		{filename: "cover.jpg", head: jpegHead, want: "image/jpeg"},
		{filename: "cover.jpeg", head: jpegHead, want: "image/jpeg"},
		{filename: "cover.gif", head: gifHead, want: "image/gif"},
	}

	for _, tt := range tests {
		got, err := ValidateImageBySniff(tt.filename, tt.head)
		if err != nil {
			t.Fatalf("ValidateImageBySniff(%q) returned error: %v", tt.filename, err)
		}
		if got != tt.want {
			t.Fatalf("ValidateImageBySniff(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestValidateImageBySniffRejectsExtension(t *testing.T) {
	if _, err := ValidateImageBySniff("cover.webp", pngHead); err == nil {
		t.Fatalf("expected error for disallowed extension")
	}
	if _, err := ValidateImageBySniff("cover", pngHead); err == nil {
		t.Fatalf("expected error for missing extension")
	}
}

func TestValidateImageBySniffRejectsHTMLPayload(t *testing.T) {
	// Whitelisted extension, scriptable content.
	if _, err := ValidateImageBySniff("cover.png", htmlHead); err == nil {
		t.Fatalf("expected error for HTML content behind an image extension")
	}
}

func TestValidateImageBySniffRejectsMismatchedContent(t *testing.T) {
	if _, err := ValidateImageBySniff("cover.png", []byte("plain text, not an image")); err == nil {
		t.Fatalf("expected error for non-image content")
	}
}

func TestValidateImageSize(t *testing.T) {
	if err := ValidateImageSize(MaxImageBytes); err != nil {
		t.Fatalf("size at the limit should pass: %v", err)
	}
	if err := ValidateImageSize(MaxImageBytes + 1); err == nil {
		t.Fatalf("expected error above the limit")
	}
}
