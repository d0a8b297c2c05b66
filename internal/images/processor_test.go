package images_test

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkamath/wanderstay/internal/images"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJPEG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return &buf
}

func TestProcessor_Save(t *testing.T) {
	p, err := images.NewProcessor(t.TempDir())
	require.NoError(t, err)

	original, thumbnail, err := p.Save(testJPEG(t, 1200, 800), "house.jpg")
	require.NoError(t, err)
	assert.NotEqual(t, original, thumbnail)

	for _, name := range []string{original, thumbnail} {
		_, err := os.Stat(filepath.Join(p.Dir(), name))
		assert.NoError(t, err, name)
	}

	// Thumbnail fits inside the 300x300 bound, aspect ratio preserved.
	f, err := os.Open(filepath.Join(p.Dir(), thumbnail))
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.LessOrEqual(t, cfg.Width, 300)
	assert.LessOrEqual(t, cfg.Height, 300)
}

func TestProcessor_SaveRejectsGarbage(t *testing.T) {
	p, err := images.NewProcessor(t.TempDir())
	require.NoError(t, err)

	_, _, err = p.Save(bytes.NewBufferString("not an image"), "x.jpg")
	assert.Error(t, err)
}
