package ui

import (
	"context"
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/pchrisoc/zymome/internal/gallery"
	"github.com/pchrisoc/zymome/internal/model"
)

// Tile is one gallery cell: the cover-cropped thumbnail with a caption
// overlay (title and date line) pinned to the bottom edge over a gradient.
// The whole tile is tappable and opens the lightbox at its index.
type Tile struct {
	widget.BaseWidget

	record       model.ImageRecord
	index        int
	images       gallery.ImageSource
	localization *Localization

	// UI components
	placeholder *canvas.Rectangle
	thumbnail   *canvas.Image
	altLabel    *widget.Label
	gradient    *canvas.LinearGradient
	titleLabel  *widget.Label
	dateLabel   *widget.Label

	loadOnce sync.Once

	// Callbacks
	onTap func(index int)
}

// NewTile creates a tile for one gallery record
func NewTile(record model.ImageRecord, index int, images gallery.ImageSource, localization *Localization, onTap func(index int)) *Tile {
	t := &Tile{
		record:       record,
		index:        index,
		images:       images,
		localization: localization,
		onTap:        onTap,
	}
	t.ExtendBaseWidget(t)
	t.createUI()
	return t
}

// createUI creates the UI components
func (t *Tile) createUI() {
	t.placeholder = canvas.NewRectangle(color.RGBA{R: 28, G: 28, B: 32, A: 255})

	// The thumbnail is pre-cropped to the cell aspect, so stretching fills
	// the cell without visible distortion.
	t.thumbnail = canvas.NewImageFromImage(nil)
	t.thumbnail.FillMode = canvas.ImageFillStretch
	t.thumbnail.ScaleMode = canvas.ImageScaleSmooth
	t.thumbnail.Hide()

	// Shown centered over the placeholder when the image cannot be loaded,
	// the desktop analog of a broken img rendering its alt text.
	t.altLabel = widget.NewLabel(t.record.DisplayAlt())
	t.altLabel.Alignment = fyne.TextAlignCenter
	t.altLabel.Wrapping = fyne.TextWrapWord
	t.altLabel.Hide()

	t.gradient = canvas.NewVerticalGradient(color.Transparent, color.RGBA{A: 215})

	t.titleLabel = widget.NewLabel(t.record.Title)
	t.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	t.titleLabel.Truncation = fyne.TextTruncateEllipsis
	t.titleLabel.Alignment = fyne.TextAlignLeading

	t.dateLabel = widget.NewLabel("")
	t.dateLabel.Alignment = fyne.TextAlignLeading
	if line := captionDateLine(t.record, t.localization); line != "" {
		t.dateLabel.SetText(line)
	} else {
		t.dateLabel.Hide()
	}
}

// StartLoad fetches the thumbnail in the background and applies the result
// on the UI thread. Safe to call more than once; only the first call loads.
func (t *Tile) StartLoad(ctx context.Context) {
	t.loadOnce.Do(func() {
		go func() {
			img, err := t.images.Thumbnail(ctx, t.record.Src)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("Tile thumbnail failed: id=%s src=%s err=%v", t.record.ID, t.record.Src, err)
				fyne.Do(func() {
					t.altLabel.Show()
					t.Refresh()
				})
				return
			}

			fyne.Do(func() {
				t.thumbnail.Image = img
				t.thumbnail.Show()
				t.altLabel.Hide()
				t.Refresh()
			})
		}()
	})
}

// Record returns the gallery record this tile renders
func (t *Tile) Record() model.ImageRecord {
	return t.record
}

// Index returns the tile's position in the gallery
func (t *Tile) Index() int {
	return t.index
}

// Tapped opens the lightbox at this tile's index
func (t *Tile) Tapped(_ *fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap(t.index)
	}
}

// Cursor shows the pointer cursor on desktop, matching a clickable image
func (t *Tile) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer creates the widget renderer
func (t *Tile) CreateRenderer() fyne.WidgetRenderer {
	// Transparent spacer keeps the caption band height steady between tiles
	// with and without a date line
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, CaptionOverlayHeight))

	caption := container.NewStack(
		t.gradient,
		spacer,
		container.NewPadded(container.NewVBox(t.titleLabel, t.dateLabel)),
	)

	layout := container.NewStack(
		t.placeholder,
		t.thumbnail,
		container.NewCenter(t.altLabel),
		container.NewBorder(nil, caption, nil, nil),
	)

	return &tileRenderer{tile: t, layout: layout}
}

// tileRenderer renders the tile widget
type tileRenderer struct {
	tile   *Tile
	layout *fyne.Container
}

// Layout arranges the components
func (r *tileRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *tileRenderer) MinSize() fyne.Size {
	return fyne.NewSize(TileMinWidth, TileMinWidth*TileAspectRatio)
}

// Refresh refreshes the renderer
func (r *tileRenderer) Refresh() {
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *tileRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *tileRenderer) Destroy() {}
