package avatar

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"mime/multipart"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/andreamorim18/helpdesk/internal/storage"
)

const (
	MaxFileSize = 5 << 20 // 5MB
	maxEdge     = 512
	quality     = 80
)

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Processor normalizes uploaded avatars: every accepted image is decoded,
// downscaled to fit maxEdge and re-encoded as webp before storage.
type Processor struct {
	storage storage.Driver
}

func NewProcessor(driver storage.Driver) *Processor {
	return &Processor{storage: driver}
}

func Validate(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return fmt.Errorf("file exceeds maximum size of %d bytes", MaxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExts[ext] {
		return fmt.Errorf("file type %s not allowed", ext)
	}
	return nil
}

// Store processes the upload and returns the object path and public URL.
func (p *Processor) Store(ctx context.Context, file *multipart.FileHeader) (string, string, error) {
	if err := Validate(file); err != nil {
		return "", "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %w", err)
	}

	img = fit(img, maxEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return "", "", fmt.Errorf("failed to encode webp: %w", err)
	}

	path := "avatars/" + uuid.NewString() + ".webp"
	if err := p.storage.Save(ctx, path, &buf); err != nil {
		return "", "", err
	}

	return path, p.storage.PublicURL(path), nil
}

func (p *Processor) Remove(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	return p.storage.Delete(ctx, path)
}

// ObjectPath recovers the storage key from a stored avatar URL.
func ObjectPath(url string) string {
	if i := strings.Index(url, "avatars/"); i >= 0 {
		return url[i:]
	}
	return ""
}

// fit downscales img so its longest edge is at most max, preserving the
// aspect ratio. Images already small enough pass through untouched.
func fit(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}

	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
