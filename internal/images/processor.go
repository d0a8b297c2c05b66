// Package images stores listing photos on disk and generates thumbnails.
package images

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const thumbnailSize = 300

type Processor struct {
	dir string
}

func NewProcessor(dir string) (*Processor, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating photo dir: %w", err)
	}
	return &Processor{dir: dir}, nil
}

// Dir returns the directory photos are served from.
func (p *Processor) Dir() string { return p.dir }

// Save decodes an uploaded photo, writes the original and a 300x300 bounded
// thumbnail, and returns their filenames relative to the photo directory.
func (p *Processor) Save(r io.Reader, filename string) (original, thumbnail string, err error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return "", "", fmt.Errorf("decoding image: %w", err)
	}

	ext := normalizeExt(filename, format)
	base := uuid.New().String()
	original = base + ext
	thumbnail = base + "_thumb" + ext

	if err := p.write(original, img, format); err != nil {
		return "", "", err
	}

	thumb := resize.Thumbnail(thumbnailSize, thumbnailSize, img, resize.Lanczos3)
	if err := p.write(thumbnail, thumb, format); err != nil {
		return "", "", err
	}

	return original, thumbnail, nil
}

func (p *Processor) write(name string, img image.Image, format string) error {
	f, err := os.Create(filepath.Join(p.dir, name))
	if err != nil {
		return fmt.Errorf("creating photo file: %w", err)
	}
	defer f.Close()

	switch format {
	case "png":
		err = png.Encode(f, img)
	case "gif":
		err = gif.Encode(f, img, nil)
	default:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return fmt.Errorf("encoding photo: %w", err)
	}
	return nil
}

func normalizeExt(filename, format string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
		return ext
	}
	switch format {
	case "png":
		return ".png"
	case "gif":
		return ".gif"
	}
	return ".jpg"
}
