package ui

import (
	"fyne.io/fyne/v2"
)

// galleryGridLayout arranges tiles in a responsive grid. The column count
// follows the container width, every cell keeps a 3:4 aspect, and rows flow
// top to bottom in source order.
type galleryGridLayout struct {
	lastWidth float32
}

// NewGalleryGridLayout creates the responsive tile layout
func NewGalleryGridLayout() fyne.Layout {
	return &galleryGridLayout{}
}

// ColumnsForWidth returns the column count for a given container width
func ColumnsForWidth(width float32) int {
	switch {
	case width < GridTwoColumnMinWidth:
		return 1
	case width < GridThreeColumnMinWidth:
		return 2
	case width < GridFourColumnMinWidth:
		return 3
	default:
		return GridMaxColumns
	}
}

// Layout positions all visible objects into uniform 3:4 cells
func (g *galleryGridLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	g.lastWidth = size.Width

	cols := ColumnsForWidth(size.Width)
	cellWidth := cellWidthFor(size.Width, cols)
	cellHeight := cellWidth * TileAspectRatio
	cellSize := fyne.NewSize(cellWidth, cellHeight)

	col, row := 0, 0
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}

		x := GridPadding + float32(col)*(cellWidth+GridPadding)
		y := GridPadding + float32(row)*(cellHeight+GridPadding)
		obj.Move(fyne.NewPos(x, y))
		obj.Resize(cellSize)

		col++
		if col == cols {
			col = 0
			row++
		}
	}
}

// MinSize reports the height all rows need at the last laid-out width, so a
// surrounding scroll container can size its content. The width component
// stays at a single narrow column; the scroll viewport dictates actual width.
func (g *galleryGridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	count := 0
	for _, obj := range objects {
		if obj.Visible() {
			count++
		}
	}
	if count == 0 {
		return fyne.NewSize(TileMinWidth+2*GridPadding, 0)
	}

	width := g.lastWidth
	if width <= 0 {
		width = WindowDefaultWidth
	}

	cols := ColumnsForWidth(width)
	cellHeight := cellWidthFor(width, cols) * TileAspectRatio
	rows := (count + cols - 1) / cols

	height := GridPadding + float32(rows)*(cellHeight+GridPadding)
	return fyne.NewSize(TileMinWidth+2*GridPadding, height)
}

// cellWidthFor splits the available width into equal cells with padding on
// both edges and between columns
func cellWidthFor(total float32, cols int) float32 {
	w := (total - float32(cols+1)*GridPadding) / float32(cols)
	if w < 1 {
		w = 1
	}
	return w
}
