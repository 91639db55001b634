package ui

import (
	"context"
	"image"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/pchrisoc/zymome/internal/model"
)

// countingImages counts thumbnail requests on top of the stub behavior
type countingImages struct {
	stubImages
	thumbnails atomic.Int64
}

func (c *countingImages) Thumbnail(ctx context.Context, src string) (image.Image, error) {
	c.thumbnails.Add(1)
	return c.stubImages.Thumbnail(ctx, src)
}

func TestTile_TapOpensAtIndex(t *testing.T) {
	test.NewApp()

	tapped := -1
	record := model.ImageRecord{ID: "a", Src: "/images/a.jpg", Title: "Alpha"}
	tile := NewTile(record, 2, &stubImages{}, NewLocalization(), func(index int) {
		tapped = index
	})

	tile.Tapped(nil)

	if tapped != 2 {
		t.Errorf("Expected tap to report index 2, got %d", tapped)
	}
	if tile.Index() != 2 {
		t.Errorf("Expected Index() 2, got %d", tile.Index())
	}
}

func TestTile_ThumbnailShownAfterLoad(t *testing.T) {
	test.NewApp()

	record := model.ImageRecord{ID: "a", Src: "/images/a.jpg"}
	tile := NewTile(record, 0, &stubImages{}, NewLocalization(), nil)

	tile.StartLoad(context.Background())

	maxAttempts := 100
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if tile.thumbnail.Visible() {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !tile.thumbnail.Visible() {
		t.Fatal("Expected thumbnail to be visible after load")
	}
	if tile.thumbnail.Image == nil {
		t.Error("Expected thumbnail image to be set")
	}
	if tile.altLabel.Visible() {
		t.Error("Expected alt text to stay hidden on success")
	}
}

func TestTile_AltFallbackOnBrokenImage(t *testing.T) {
	test.NewApp()

	// No alt text, so the fixed placeholder is shown
	record := model.ImageRecord{ID: "a", Src: "/images/broken.jpg"}
	tile := NewTile(record, 0, &brokenImages{}, NewLocalization(), nil)

	tile.StartLoad(context.Background())

	maxAttempts := 100
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if tile.altLabel.Visible() {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !tile.altLabel.Visible() {
		t.Fatal("Expected alt text after a broken image")
	}
	if tile.altLabel.Text != "Gallery image" {
		t.Errorf("Expected placeholder alt text, got '%s'", tile.altLabel.Text)
	}
	if tile.thumbnail.Visible() {
		t.Error("Expected thumbnail to stay hidden on failure")
	}
}

func TestTile_DateLine(t *testing.T) {
	test.NewApp()

	tests := []struct {
		name     string
		record   model.ImageRecord
		expected string
		hidden   bool
	}{
		{
			name:     "taken date preferred",
			record:   model.ImageRecord{TakenDate: "2024-03-15T10:30:00Z", CreatedTime: "2024-01-02T08:00:00Z"},
			expected: "Taken Mar 15, 2024",
		},
		{
			name:     "created time fallback",
			record:   model.ImageRecord{CreatedTime: "2024-01-02T08:00:00Z"},
			expected: "Uploaded Jan 2, 2024",
		},
		{
			name:   "no dates, no line",
			record: model.ImageRecord{},
			hidden: true,
		},
		{
			name:     "malformed taken date degrades without falling back",
			record:   model.ImageRecord{TakenDate: "garbage", CreatedTime: "2024-01-02T08:00:00Z"},
			expected: "Taken Invalid Date",
		},
	}

	for _, tc := range tests {
		tile := NewTile(tc.record, 0, &stubImages{}, NewLocalization(), nil)

		if tc.hidden {
			if tile.dateLabel.Visible() {
				t.Errorf("%s: expected no date line", tc.name)
			}
			continue
		}
		if !tile.dateLabel.Visible() {
			t.Errorf("%s: expected a date line", tc.name)
			continue
		}
		if tile.dateLabel.Text != tc.expected {
			t.Errorf("%s: expected '%s', got '%s'", tc.name, tc.expected, tile.dateLabel.Text)
		}
	}
}

func TestTile_StartLoadRunsOnce(t *testing.T) {
	test.NewApp()

	images := &countingImages{}
	record := model.ImageRecord{ID: "a", Src: "/images/a.jpg"}
	tile := NewTile(record, 0, images, NewLocalization(), nil)

	tile.StartLoad(context.Background())
	tile.StartLoad(context.Background())

	maxAttempts := 100
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if tile.thumbnail.Visible() {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !tile.thumbnail.Visible() {
		t.Fatal("Expected thumbnail to load")
	}
	if count := images.thumbnails.Load(); count != 1 {
		t.Errorf("Expected a single thumbnail fetch, got %d", count)
	}
}
