package imageproc

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers to create in-memory test images
// ---------------------------------------------------------------------------

func createTestJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	require.NoError(t, err)
	return buf.Bytes()
}

func createTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{G: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	require.NoError(t, err)
	return buf.Bytes()
}

func createTestGIF(t *testing.T, w, h int) []byte {
	t.Helper()
	palette := color.Palette{color.White, color.RGBA{R: 255, A: 255}}
	img := image.NewPaletted(image.Rect(0, 0, w, h), palette)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetColorIndex(x, y, 1)
		}
	}
	var buf bytes.Buffer
	err := gif.Encode(&buf, img, nil)
	require.NoError(t, err)
	return buf.Bytes()
}

// ---------------------------------------------------------------------------
// Decode tests
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Run("jpeg", func(t *testing.T) {
		img, err := Decode(createTestJPEG(t, 100, 80))
		require.NoError(t, err)
		assert.Equal(t, 100, img.Bounds().Dx())
		assert.Equal(t, 80, img.Bounds().Dy())
	})

	t.Run("png", func(t *testing.T) {
		img, err := Decode(createTestPNG(t, 64, 64))
		require.NoError(t, err)
		assert.Equal(t, 64, img.Bounds().Dx())
	})

	t.Run("gif", func(t *testing.T) {
		img, err := Decode(createTestGIF(t, 32, 48))
		require.NoError(t, err)
		assert.Equal(t, 48, img.Bounds().Dy())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Decode([]byte("definitely not an image"))
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Decode(nil)
		assert.Error(t, err)
	})
}

// ---------------------------------------------------------------------------
// DetectFormat tests
// ---------------------------------------------------------------------------

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "jpeg"},
		{"png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, "png"},
		{"gif87a", []byte("GIF87a"), "gif"},
		{"gif89a", []byte("GIF89a"), "gif"},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBP"), "webp"},
		{"bmp", []byte("BMxxxx"), "bmp"},
		{"tiff little endian", []byte{'I', 'I', 0x2A, 0x00}, "tiff"},
		{"tiff big endian", []byte{'M', 'M', 0x00, 0x2A}, "tiff"},
		{"unknown", []byte("hello world"), ""},
		{"empty", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DetectFormat(tc.data))
		})
	}
}

func TestDetectFormat_RealEncodings(t *testing.T) {
	assert.Equal(t, "jpeg", DetectFormat(createTestJPEG(t, 10, 10)))
	assert.Equal(t, "png", DetectFormat(createTestPNG(t, 10, 10)))
	assert.Equal(t, "gif", DetectFormat(createTestGIF(t, 10, 10)))
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{"jpeg", ".jpg"},
		{"png", ".png"},
		{"gif", ".gif"},
		{"webp", ".webp"},
		{"bmp", ".bmp"},
		{"tiff", ".tiff"},
		{"", ""},
		{"svg", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ExtensionFor(tc.format), "format %q", tc.format)
	}
}

// ---------------------------------------------------------------------------
// Geometry tests
// ---------------------------------------------------------------------------

func TestCoverCrop(t *testing.T) {
	t.Run("wide source fills portrait target", func(t *testing.T) {
		img, err := Decode(createTestJPEG(t, 400, 100))
		require.NoError(t, err)

		out := CoverCrop(img, 30, 40)
		assert.Equal(t, 30, out.Bounds().Dx())
		assert.Equal(t, 40, out.Bounds().Dy())
	})

	t.Run("tall source fills portrait target", func(t *testing.T) {
		img, err := Decode(createTestPNG(t, 100, 400))
		require.NoError(t, err)

		out := CoverCrop(img, 30, 40)
		assert.Equal(t, 30, out.Bounds().Dx())
		assert.Equal(t, 40, out.Bounds().Dy())
	})

	t.Run("upscales small sources", func(t *testing.T) {
		img, err := Decode(createTestPNG(t, 10, 10))
		require.NoError(t, err)

		out := CoverCrop(img, 30, 40)
		assert.Equal(t, 30, out.Bounds().Dx())
		assert.Equal(t, 40, out.Bounds().Dy())
	})
}

func TestFitWithin(t *testing.T) {
	t.Run("scales down preserving aspect", func(t *testing.T) {
		img, err := Decode(createTestJPEG(t, 400, 200))
		require.NoError(t, err)

		out := FitWithin(img, 100, 100)
		assert.Equal(t, 100, out.Bounds().Dx())
		assert.Equal(t, 50, out.Bounds().Dy())
	})

	t.Run("never upscales", func(t *testing.T) {
		img, err := Decode(createTestPNG(t, 40, 20))
		require.NoError(t, err)

		out := FitWithin(img, 100, 100)
		assert.Equal(t, 40, out.Bounds().Dx())
		assert.Equal(t, 20, out.Bounds().Dy())
	})
}

func TestThumbnailSize(t *testing.T) {
	w, h := ThumbnailSize()
	require.Positive(t, w)
	require.Positive(t, h)
	// Tiles are 3:4
	assert.Equal(t, w*4, h*3)
}
