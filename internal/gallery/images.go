package gallery

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pchrisoc/zymome/internal/imageproc"
)

// maxParallelFetches caps concurrent image downloads, mirroring the per-host
// connection limit a browser applies to image traffic.
const maxParallelFetches = 6

// imageFetchTimeout bounds a single image download. The listing fetch has no
// timeout (that is a contract of the loading state); image content does.
const imageFetchTimeout = 30 * time.Second

// Cache key prefixes keep raw bytes and decoded thumbnails apart.
const (
	rawKeyPrefix   = "raw|"
	thumbKeyPrefix = "thumb|"
)

// cacheCleanupInterval is how often expired entries are swept
const cacheCleanupInterval = 10 * time.Minute

// ImageService fetches image content over HTTP and memoizes it in a TTL
// cache, standing in for the browser image cache of a web gallery. It never
// retries: a failed image stays failed until the tile asks again.
type ImageService struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
	slots      chan struct{}
}

// NewImageService creates an image fetcher whose cache entries expire after ttl
func NewImageService(baseURL string, ttl time.Duration) *ImageService {
	return &ImageService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: imageFetchTimeout},
		cache:      gocache.New(ttl, cacheCleanupInterval),
		slots:      make(chan struct{}, maxParallelFetches),
	}
}

// Raw returns the image bytes for src, fetching once and caching thereafter
func (s *ImageService) Raw(ctx context.Context, src string) ([]byte, error) {
	if cached, found := s.cache.Get(rawKeyPrefix + src); found {
		return cached.([]byte), nil
	}

	select {
	case s.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-s.slots }()

	// Another fetch may have landed while we waited for a slot
	if cached, found := s.cache.Get(rawKeyPrefix + src); found {
		return cached.([]byte), nil
	}

	url := s.resolveURL(src)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("image fetch for %s failed: %s", src, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	s.cache.Set(rawKeyPrefix+src, data, gocache.DefaultExpiration)
	log.Printf("Fetched image %s (%d bytes)", src, len(data))
	return data, nil
}

// Thumbnail returns the cover-cropped grid raster for src
func (s *ImageService) Thumbnail(ctx context.Context, src string) (image.Image, error) {
	if cached, found := s.cache.Get(thumbKeyPrefix + src); found {
		return cached.(image.Image), nil
	}

	data, err := s.Raw(ctx, src)
	if err != nil {
		return nil, err
	}

	img, err := imageproc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}

	w, h := imageproc.ThumbnailSize()
	thumb := imageproc.CoverCrop(img, w, h)
	s.cache.Set(thumbKeyPrefix+src, thumb, gocache.DefaultExpiration)
	return thumb, nil
}

// Full returns the decoded image for src without resizing. The lightbox fits
// it to the window at draw time; pixels are never cropped or scaled here.
func (s *ImageService) Full(ctx context.Context, src string) (image.Image, error) {
	data, err := s.Raw(ctx, src)
	if err != nil {
		return nil, err
	}

	img, err := imageproc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return img, nil
}

// resolveURL makes server-relative src values absolute against the base URL
func (s *ImageService) resolveURL(src string) string {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	if strings.HasPrefix(src, "/") {
		return s.baseURL + src
	}
	return s.baseURL + "/" + src
}
