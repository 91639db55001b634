package imageproc

import (
	"bytes"
	"fmt"
	"image"

	// Decoders for the formats the gallery serves. GIF animation is not
	// preserved; the first frame is what a still tile shows anyway.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
)

// Grid tiles are rasterized once at a fixed 3:4 size; the layout scales the
// result to the cell, so a single raster serves every breakpoint.
const (
	thumbnailWidth  = 420
	thumbnailHeight = 560
)

// ThumbnailSize returns the pixel size of grid tile rasters
func ThumbnailSize() (int, int) {
	return thumbnailWidth, thumbnailHeight
}

// Decode decodes image bytes in any registered format (JPEG, PNG, GIF, WebP,
// BMP, TIFF).
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// DetectFormat inspects the raw bytes and returns the image format:
// "jpeg", "png", "gif", "webp", "bmp", "tiff", or "" if unknown.
func DetectFormat(data []byte) string {
	// JPEG: starts with FF D8 FF
	if len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return "jpeg"
	}
	// PNG: starts with 89 50 4E 47 0D 0A 1A 0A
	if len(data) >= 8 && data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 &&
		data[4] == 0x0D && data[5] == 0x0A && data[6] == 0x1A && data[7] == 0x0A {
		return "png"
	}
	// GIF: starts with GIF87a or GIF89a
	if len(data) >= 6 && data[0] == 'G' && data[1] == 'I' && data[2] == 'F' {
		return "gif"
	}
	// WebP: starts with RIFF....WEBP
	if len(data) >= 12 && data[0] == 'R' && data[1] == 'I' && data[2] == 'F' && data[3] == 'F' &&
		data[8] == 'W' && data[9] == 'E' && data[10] == 'B' && data[11] == 'P' {
		return "webp"
	}
	// BMP: starts with BM
	if len(data) >= 2 && data[0] == 'B' && data[1] == 'M' {
		return "bmp"
	}
	// TIFF: II*\0 (little endian) or MM\0* (big endian)
	if len(data) >= 4 && ((data[0] == 'I' && data[1] == 'I' && data[2] == 0x2A && data[3] == 0x00) ||
		(data[0] == 'M' && data[1] == 'M' && data[2] == 0x00 && data[3] == 0x2A)) {
		return "tiff"
	}
	return ""
}

// ExtensionFor maps a detected format to a filename extension, "" if unknown
func ExtensionFor(format string) string {
	switch format {
	case "jpeg":
		return ".jpg"
	case "png", "gif", "webp", "bmp", "tiff":
		return "." + format
	}
	return ""
}

// CoverCrop scales the image to fully cover w x h and center-crops the
// overflow. This is what keeps grid tiles at an exact 3:4 regardless of the
// source aspect ratio.
func CoverCrop(img image.Image, w, h int) *image.NRGBA {
	return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
}

// FitWithin scales the image down to fit inside maxW x maxH preserving the
// aspect ratio. Images already inside the bounds come back unscaled.
func FitWithin(img image.Image, maxW, maxH int) *image.NRGBA {
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}
