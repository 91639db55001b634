package ui

import (
	"context"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/pchrisoc/zymome/internal/gallery"
	"github.com/pchrisoc/zymome/internal/model"
)

// Lightbox is the fullscreen overlay showing one record at a time: dimmed
// backdrop, the full image fit to the window, caption, position counter, and
// navigation chrome. Tapping the backdrop closes it; taps on the content
// area are absorbed so they never fall through to the backdrop.
type Lightbox struct {
	widget.BaseWidget

	images       gallery.ImageSource
	localization *Localization

	record     model.ImageRecord
	generation int

	// UI components
	backdrop     *lightboxBackdrop
	fullImage    *canvas.Image
	spinner      *widget.ProgressBarInfinite
	altLabel     *widget.Label
	counterLabel *widget.Label
	titleLabel   *widget.Label
	dateLabel    *widget.Label
	prevBtn      *widget.Button
	nextBtn      *widget.Button
	closeBtn     *widget.Button
	saveBtn      *widget.Button

	gestures *GestureHandler

	// Callbacks
	onPrev  func()
	onNext  func()
	onClose func()
	onSave  func(record model.ImageRecord)
}

// NewLightbox creates the lightbox overlay widget
func NewLightbox(images gallery.ImageSource, localization *Localization) *Lightbox {
	lb := &Lightbox{
		images:       images,
		localization: localization,
	}
	lb.ExtendBaseWidget(lb)
	lb.createUI()
	return lb
}

// SetCallbacks sets the navigation and action callbacks
func (lb *Lightbox) SetCallbacks(
	onPrev func(),
	onNext func(),
	onClose func(),
	onSave func(record model.ImageRecord),
) {
	lb.onPrev = onPrev
	lb.onNext = onNext
	lb.onClose = onClose
	lb.onSave = onSave
}

// createUI creates the UI components
func (lb *Lightbox) createUI() {
	lb.gestures = NewGestureHandler(lb.handleGesture)
	lb.backdrop = newLightboxBackdrop(lb.close, lb.gestures)

	lb.fullImage = canvas.NewImageFromImage(nil)
	lb.fullImage.FillMode = canvas.ImageFillContain
	lb.fullImage.ScaleMode = canvas.ImageScaleSmooth
	lb.fullImage.Hide()

	lb.spinner = widget.NewProgressBarInfinite()
	lb.spinner.Hide()

	lb.altLabel = widget.NewLabel("")
	lb.altLabel.Alignment = fyne.TextAlignCenter
	lb.altLabel.Wrapping = fyne.TextWrapWord
	lb.altLabel.Hide()

	lb.counterLabel = widget.NewLabel("")
	lb.counterLabel.TextStyle = fyne.TextStyle{Monospace: true}

	lb.titleLabel = widget.NewLabel("")
	lb.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	lb.titleLabel.Alignment = fyne.TextAlignCenter
	lb.titleLabel.Truncation = fyne.TextTruncateEllipsis

	lb.dateLabel = widget.NewLabel("")
	lb.dateLabel.Alignment = fyne.TextAlignCenter

	lb.prevBtn = widget.NewButton(IconPrev, lb.prev)
	lb.prevBtn.Importance = widget.LowImportance

	lb.nextBtn = widget.NewButton(IconNext, lb.next)
	lb.nextBtn.Importance = widget.LowImportance

	lb.closeBtn = widget.NewButton(IconClose, lb.close)
	lb.closeBtn.Importance = widget.LowImportance

	lb.saveBtn = widget.NewButton(IconSave, lb.save)
	lb.saveBtn.Importance = widget.LowImportance
}

// ShowRecord displays one gallery record with its counter position. The full
// image is fetched in the background; a result arriving after another
// ShowRecord call or after cancellation is dropped.
func (lb *Lightbox) ShowRecord(ctx context.Context, record model.ImageRecord, counter string) {
	lb.generation++
	generation := lb.generation

	lb.record = record
	lb.counterLabel.SetText(counter)
	lb.titleLabel.SetText(record.Title)
	if line := captionDateLine(record, lb.localization); line != "" {
		lb.dateLabel.SetText(line)
		lb.dateLabel.Show()
	} else {
		lb.dateLabel.Hide()
	}

	lb.fullImage.Hide()
	lb.altLabel.Hide()
	lb.spinner.Show()
	lb.Refresh()

	go func() {
		img, err := lb.images.Full(ctx, record.Src)
		fyne.Do(func() {
			if generation != lb.generation {
				return
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("Lightbox image failed: id=%s src=%s err=%v", record.ID, record.Src, err)
				lb.spinner.Hide()
				lb.altLabel.SetText(record.DisplayAlt())
				lb.altLabel.Show()
				lb.Refresh()
				return
			}

			lb.spinner.Hide()
			lb.fullImage.Image = img
			lb.fullImage.Show()
			lb.Refresh()
		})
	}()
}

// Record returns the record currently shown
func (lb *Lightbox) Record() model.ImageRecord {
	return lb.record
}

// Counter returns the counter text currently shown
func (lb *Lightbox) Counter() string {
	return lb.counterLabel.Text
}

// handleGesture maps touch gestures onto lightbox actions
func (lb *Lightbox) handleGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		lb.next()
	case GestureSwipeRight:
		lb.prev()
	case GestureSwipeDown:
		lb.close()
	}
}

func (lb *Lightbox) prev() {
	if lb.onPrev != nil {
		lb.onPrev()
	}
}

func (lb *Lightbox) next() {
	if lb.onNext != nil {
		lb.onNext()
	}
}

func (lb *Lightbox) close() {
	if lb.onClose != nil {
		lb.onClose()
	}
}

func (lb *Lightbox) save() {
	if lb.onSave != nil {
		lb.onSave(lb.record)
	}
}

// CreateRenderer creates the widget renderer
func (lb *Lightbox) CreateRenderer() fyne.WidgetRenderer {
	// Helper to fix width using a transparent rectangle underneath, so both
	// nav columns stay the same width regardless of glyph metrics
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	topBar := newTapAbsorber(container.NewBorder(
		nil, nil,
		lb.counterLabel,
		container.NewHBox(lb.saveBtn, lb.closeBtn),
	), nil)

	// The caption band keeps a fixed minimum height so the image frame does
	// not jump when navigating between records with and without a date line
	captionSpacer := canvas.NewRectangle(color.Transparent)
	captionSpacer.SetMinSize(fyne.NewSize(0, LightboxCaptionHeight))
	caption := newTapAbsorber(container.NewStack(
		captionSpacer,
		container.NewVBox(lb.titleLabel, lb.dateLabel),
	), nil)

	imageArea := newTapAbsorber(container.NewStack(
		lb.fullImage,
		container.NewCenter(lb.spinner),
		container.NewCenter(lb.altLabel),
	), lb.gestures)

	chrome := container.NewBorder(
		topBar,
		caption,
		container.NewCenter(fixedWidth(LightboxNavButtonWidth, lb.prevBtn)),
		container.NewCenter(fixedWidth(LightboxNavButtonWidth, lb.nextBtn)),
		imageArea,
	)

	layout := container.NewStack(lb.backdrop, container.NewPadded(chrome))
	return &lightboxRenderer{lightbox: lb, layout: layout}
}

// lightboxRenderer renders the lightbox widget
type lightboxRenderer struct {
	lightbox *Lightbox
	layout   *fyne.Container
}

// Layout arranges the components
func (r *lightboxRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *lightboxRenderer) MinSize() fyne.Size {
	return fyne.NewSize(WindowMinWidth, WindowMinHeight)
}

// Refresh refreshes the renderer
func (r *lightboxRenderer) Refresh() {
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *lightboxRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *lightboxRenderer) Destroy() {}

// lightboxBackdrop is the dimmed layer behind the lightbox content. Tapping
// it, and only it, closes the lightbox; touch events feed the gesture
// handler so swipes work anywhere on the overlay.
type lightboxBackdrop struct {
	widget.BaseWidget

	fill     *canvas.Rectangle
	onTap    func()
	gestures *GestureHandler
}

func newLightboxBackdrop(onTap func(), gestures *GestureHandler) *lightboxBackdrop {
	b := &lightboxBackdrop{
		fill:     canvas.NewRectangle(color.RGBA{R: 10, G: 10, B: 12, A: 235}),
		onTap:    onTap,
		gestures: gestures,
	}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped closes the lightbox
func (b *lightboxBackdrop) Tapped(_ *fyne.PointEvent) {
	if b.onTap != nil {
		b.onTap()
	}
}

// TouchDown handles touch down events
func (b *lightboxBackdrop) TouchDown(event *mobile.TouchEvent) {
	b.gestures.TouchDown(event)
}

// TouchUp handles touch up events
func (b *lightboxBackdrop) TouchUp(event *mobile.TouchEvent) {
	b.gestures.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (b *lightboxBackdrop) TouchCancel(event *mobile.TouchEvent) {
	b.gestures.TouchCancel(event)
}

// CreateRenderer creates the widget renderer
func (b *lightboxBackdrop) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.fill)
}

// tapAbsorber consumes taps over its content so they do not fall through to
// the backdrop. An optional gesture handler keeps swipes working over the
// wrapped content.
type tapAbsorber struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	gestures *GestureHandler
}

func newTapAbsorber(content fyne.CanvasObject, gestures *GestureHandler) *tapAbsorber {
	a := &tapAbsorber{content: content, gestures: gestures}
	a.ExtendBaseWidget(a)
	return a
}

// Tapped absorbs the tap
func (a *tapAbsorber) Tapped(_ *fyne.PointEvent) {}

// TouchDown handles touch down events
func (a *tapAbsorber) TouchDown(event *mobile.TouchEvent) {
	if a.gestures != nil {
		a.gestures.TouchDown(event)
	}
}

// TouchUp handles touch up events
func (a *tapAbsorber) TouchUp(event *mobile.TouchEvent) {
	if a.gestures != nil {
		a.gestures.TouchUp(event)
	}
}

// TouchCancel handles touch cancel events
func (a *tapAbsorber) TouchCancel(event *mobile.TouchEvent) {
	if a.gestures != nil {
		a.gestures.TouchCancel(event)
	}
}

// CreateRenderer creates the widget renderer
func (a *tapAbsorber) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(a.content)
}

// captionDateLine builds the caption date text with the localized prefix, or
// "" when the record carries no date at all. Shared by tiles and the
// lightbox caption.
func captionDateLine(record model.ImageRecord, localization *Localization) string {
	kind, formatted := record.DateStamp()
	switch kind {
	case model.DateTaken:
		return localization.GetText(KeyTakenPrefix) + " " + formatted
	case model.DateUploaded:
		return localization.GetText(KeyUploadedPrefix) + " " + formatted
	default:
		return ""
	}
}
