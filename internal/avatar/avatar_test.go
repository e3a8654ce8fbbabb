package avatar

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreamorim18/helpdesk/internal/storage"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"small image untouched", 100, 80, 100, 80},
		{"exact edge untouched", 512, 512, 512, 512},
		{"wide image scaled", 1024, 512, 512, 256},
		{"tall image scaled", 300, 1200, 128, 512},
		{"extreme ratio clamps to 1", 10000, 2, 512, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := fit(src, maxEdge)

			b := got.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Fatalf("expected %dx%d, got %dx%d", tt.wantW, tt.wantH, b.Dx(), b.Dy())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(&multipart.FileHeader{Filename: "photo.png", Size: 1024}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Validate(&multipart.FileHeader{Filename: "photo.png", Size: MaxFileSize + 1}); err == nil {
		t.Fatalf("expected oversized file to be rejected")
	}

	if err := Validate(&multipart.FileHeader{Filename: "script.exe", Size: 1024}); err == nil {
		t.Fatalf("expected disallowed extension to be rejected")
	}

	// Extension check is case-insensitive.
	if err := Validate(&multipart.FileHeader{Filename: "photo.PNG", Size: 1024}); err != nil {
		t.Fatalf("unexpected error for uppercase extension: %v", err)
	}
}

func uploadHeader(t *testing.T, filename string, img image.Image) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("avatar", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if err := png.Encode(part, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	_, header, err := req.FormFile("avatar")
	if err != nil {
		t.Fatalf("failed to read form header: %v", err)
	}
	return header
}

func TestProcessorStore(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(storage.NewLocalStorage(dir))

	header := uploadHeader(t, "photo.png", image.NewRGBA(image.Rect(0, 0, 64, 64)))

	path, url, err := p.Store(context.Background(), header)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(path, "avatars/") || !strings.HasSuffix(path, ".webp") {
		t.Fatalf("unexpected object path %q", path)
	}
	if url != "/uploads/"+path {
		t.Fatalf("unexpected public url %q", url)
	}

	if _, err := os.Stat(filepath.Join(dir, path)); err != nil {
		t.Fatalf("expected object on disk: %v", err)
	}

	if err := p.Remove(context.Background(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, path)); !os.IsNotExist(err) {
		t.Fatalf("expected object removed, stat err: %v", err)
	}
}

func TestProcessorStore_RejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(storage.NewLocalStorage(dir))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("avatar", "fake.png")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte("not an image")); err != nil {
		t.Fatalf("failed to write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, header, err := req.FormFile("avatar")
	if err != nil {
		t.Fatalf("failed to read form header: %v", err)
	}

	if _, _, err := p.Store(context.Background(), header); err == nil {
		t.Fatalf("expected decode error for non-image payload")
	}
}

func TestObjectPath(t *testing.T) {
	if got := ObjectPath("/uploads/avatars/abc.webp"); got != "avatars/abc.webp" {
		t.Fatalf("unexpected path %q", got)
	}
	if got := ObjectPath("https://bucket.s3.us-east-1.amazonaws.com/avatars/abc.webp"); got != "avatars/abc.webp" {
		t.Fatalf("unexpected path %q", got)
	}
	if got := ObjectPath("https://example.com/other/abc.webp"); got != "" {
		t.Fatalf("expected empty path, got %q", got)
	}
}
