package gallery

import (
	"context"
	"image"

	"github.com/pchrisoc/zymome/internal/model"
)

// Fetcher defines the interface for the gallery listing client.
type Fetcher interface {
	FetchImages(ctx context.Context) ([]model.ImageRecord, error)
}

// ImageSource defines the interface for fetching and decoding image content.
type ImageSource interface {
	// Raw returns the image bytes for src, served from cache when possible
	Raw(ctx context.Context, src string) ([]byte, error)

	// Thumbnail returns the cover-cropped grid raster for src
	Thumbnail(ctx context.Context, src string) (image.Image, error)

	// Full returns the decoded image for src without resizing
	Full(ctx context.Context, src string) (image.Image, error)
}
