package gallery

// Package gallery implements the client side of the photo server: the
// listing fetch against /api/gallery and the image content fetcher with its
// in-memory TTL cache. It owns no UI; callers receive plain values and
// render them in internal/ui.
