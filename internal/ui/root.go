package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/pchrisoc/zymome/internal/config"
	"github.com/pchrisoc/zymome/internal/gallery"
	"github.com/pchrisoc/zymome/internal/imageproc"
	"github.com/pchrisoc/zymome/internal/model"
	"github.com/pchrisoc/zymome/internal/platform"
)

// Logo sizing
const (
	LogoSize float32 = 24
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	fetcher gallery.Fetcher
	images  gallery.ImageSource

	// Gallery state. All fields are touched on the UI thread only: fetch
	// results come back through fyne.Do, handlers run on the event loop.
	phase   model.LoadPhase
	records []model.ImageRecord
	state   *model.LightboxState

	// Fetch lifecycle. The generation counter discards results that arrive
	// after a newer fetch started; disposed discards everything after the
	// window closed.
	loadGeneration int
	cancelFetch    context.CancelFunc
	viewCtx        context.Context
	viewCancel     context.CancelFunc
	disposed       bool

	// UI components
	titleLabel     *widget.Label
	countLabel     *widget.Label
	reloadBtn      *widget.Button
	mainArea       *fyne.Container
	loadingView    *fyne.Container
	loadingSpinner *widget.ProgressBarInfinite
	errorView      *fyne.Container
	errorLabel     *widget.Label
	tryAgainBtn    *widget.Button
	emptyView      *fyne.Container
	gridScroll     *container.Scroll
	tiles          []*Tile
	lightbox       *Lightbox
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, fetcher gallery.Fetcher, images gallery.ImageSource) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	viewCtx, viewCancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		fetcher:      fetcher,
		images:       images,
		phase:        model.LoadPhaseLoading,
		state:        model.NewLightboxState(0),
		viewCtx:      viewCtx,
		viewCancel:   viewCancel,
	}

	log.Printf("RootUI initialized with fetcher: %v", ui.fetcher != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(ui.dispose)

	ui.setupUI()

	// Key routing is one persistent handler that consults lightbox state on
	// every event; nothing is added or removed when the lightbox opens.
	window.Canvas().SetOnTypedKey(ui.onTypedKey)

	ui.startFetch()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.countLabel = widget.NewLabel("")

	ui.reloadBtn = widget.NewButton(IconReload, ui.onReloadClick)
	ui.reloadBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var leftCluster *fyne.Container
	if err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		leftCluster = container.NewHBox(logoImage, ui.titleLabel)
	} else {
		// Fallback to text if logo loading fails
		leftCluster = container.NewHBox(ui.titleLabel)
	}

	toolbar := container.NewBorder(nil, nil, leftCluster,
		container.NewHBox(ui.countLabel, ui.reloadBtn, settingsBtn))

	// Loading view: centered spinner plus the fixed label
	ui.loadingSpinner = widget.NewProgressBarInfinite()
	loadingLabel := widget.NewLabel(LoadingText)
	loadingLabel.Alignment = fyne.TextAlignCenter
	ui.loadingView = container.NewCenter(container.NewVBox(ui.loadingSpinner, loadingLabel))

	// Error view: fixed heading, the fetch error verbatim, and a retry button
	errorHeading := widget.NewLabel(ErrorHeadingText)
	errorHeading.TextStyle = fyne.TextStyle{Bold: true}
	errorHeading.Alignment = fyne.TextAlignCenter
	errorHeading.Importance = widget.DangerImportance
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Alignment = fyne.TextAlignCenter
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.tryAgainBtn = widget.NewButton(TryAgainText, ui.onReloadClick)
	ui.tryAgainBtn.Importance = widget.HighImportance
	ui.errorView = container.NewCenter(container.NewVBox(
		errorHeading,
		ui.errorLabel,
		container.NewCenter(ui.tryAgainBtn),
	))

	// Empty view: a successful fetch with zero records is not an error
	emptyHeading := widget.NewLabel(EmptyHeadingText)
	emptyHeading.TextStyle = fyne.TextStyle{Bold: true}
	emptyHeading.Alignment = fyne.TextAlignCenter
	emptyBody := widget.NewLabel(EmptyBodyText)
	emptyBody.Alignment = fyne.TextAlignCenter
	ui.emptyView = container.NewCenter(container.NewVBox(emptyHeading, emptyBody))

	ui.mainArea = container.NewStack(ui.loadingView)

	ui.lightbox = ui.newLightbox()

	content := container.NewBorder(toolbar, nil, nil, nil, ui.mainArea)
	ui.window.SetContent(content)

	// UI setup completed
	log.Printf("UI setup completed successfully")
}

// newLightbox builds the single lightbox overlay wired to this view
func (ui *RootUI) newLightbox() *Lightbox {
	lb := NewLightbox(ui.images, ui.localization)
	lb.SetCallbacks(ui.showPrev, ui.showNext, ui.closeLightbox, ui.onSaveImage)
	return lb
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Reload menu item
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReload), ui.onReloadClick)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), reloadItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))

	// Tiles and the lightbox bake caption prefixes in at construction, so
	// rebuild them from the records already loaded. The image cache makes
	// the rebuild instant.
	ui.closeLightbox()
	ui.lightbox = ui.newLightbox()
	if ui.phase == model.LoadPhaseLoaded && len(ui.records) > 0 {
		ui.countLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyPhotoCount), len(ui.records)))
		ui.buildGridView()
		ui.setMainView(ui.gridScroll)
	}
}

// setMainView swaps the single visible gallery state view
func (ui *RootUI) setMainView(view fyne.CanvasObject) {
	ui.mainArea.Objects = []fyne.CanvasObject{view}
	ui.mainArea.Refresh()
}

// onReloadClick restarts the gallery fetch, canceling any in-flight one
func (ui *RootUI) onReloadClick() {
	log.Printf("Reload requested")
	ui.startFetch()
}

// startFetch begins a new gallery load: the view returns to Loading, any
// in-flight fetch is canceled, and its result will be discarded by the
// generation guard.
func (ui *RootUI) startFetch() {
	if ui.disposed {
		return
	}

	if ui.cancelFetch != nil {
		ui.cancelFetch()
	}

	ui.loadGeneration++
	generation := ui.loadGeneration

	ctx, cancel := context.WithCancel(ui.viewCtx)
	ui.cancelFetch = cancel

	ui.closeLightbox()
	ui.phase = model.LoadPhaseLoading
	ui.records = nil
	ui.tiles = nil
	ui.state = model.NewLightboxState(0)
	ui.countLabel.SetText("")
	ui.loadingSpinner.Start()
	ui.setMainView(ui.loadingView)

	log.Printf("Fetching gallery: generation=%d", generation)

	go func() {
		records, err := ui.fetcher.FetchImages(ctx)
		fyne.Do(func() {
			ui.applyFetch(generation, records, err)
		})
	}()
}

// applyFetch applies a fetch result on the UI thread. Results from stale
// generations or after disposal are discarded without touching state.
func (ui *RootUI) applyFetch(generation int, records []model.ImageRecord, err error) {
	if ui.disposed || generation != ui.loadGeneration {
		log.Printf("Discarding stale fetch result: generation=%d current=%d disposed=%v",
			generation, ui.loadGeneration, ui.disposed)
		return
	}

	ui.loadingSpinner.Stop()

	if err != nil {
		log.Printf("Gallery fetch failed: %v", err)
		ui.phase = model.LoadPhaseError
		ui.records = nil
		ui.state = model.NewLightboxState(0)
		ui.errorLabel.SetText(err.Error())
		ui.countLabel.SetText("")
		ui.setMainView(ui.errorView)
		return
	}

	ui.phase = model.LoadPhaseLoaded
	ui.records = records
	ui.state = model.NewLightboxState(len(records))

	if len(records) == 0 {
		log.Printf("Gallery loaded empty")
		ui.countLabel.SetText("")
		ui.setMainView(ui.emptyView)
		return
	}

	log.Printf("Gallery loaded: %d records", len(records))
	ui.countLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyPhotoCount), len(records)))
	ui.buildGridView()
	ui.setMainView(ui.gridScroll)
}

// buildGridView creates one tile per record, in source order, and starts
// their thumbnail loads.
func (ui *RootUI) buildGridView() {
	ui.tiles = make([]*Tile, 0, len(ui.records))
	objects := make([]fyne.CanvasObject, 0, len(ui.records))
	for i, record := range ui.records {
		tile := NewTile(record, i, ui.images, ui.localization, ui.openLightbox)
		ui.tiles = append(ui.tiles, tile)
		objects = append(objects, tile)
	}

	grid := container.New(NewGalleryGridLayout(), objects...)
	ui.gridScroll = container.NewVScroll(grid)

	for _, tile := range ui.tiles {
		tile.StartLoad(ui.viewCtx)
	}
}

// onTypedKey routes key events. Only Escape, Left, and Right do anything,
// and only while the lightbox is open; everything else is a no-op.
func (ui *RootUI) onTypedKey(event *fyne.KeyEvent) {
	if !ui.state.IsOpen() {
		return
	}

	switch event.Name {
	case fyne.KeyEscape:
		ui.closeLightbox()
	case fyne.KeyLeft:
		ui.showPrev()
	case fyne.KeyRight:
		ui.showNext()
	}
}

// openLightbox opens the overlay at the tapped tile's index
func (ui *RootUI) openLightbox(index int) {
	if ui.state.IsOpen() {
		return
	}
	if !ui.state.Open(index) {
		log.Printf("Lightbox open rejected: index=%d size=%d", index, ui.state.Size())
		return
	}

	overlays := ui.window.Canvas().Overlays()
	overlays.Add(ui.lightbox)
	ui.lightbox.Resize(ui.window.Canvas().Size())
	ui.showCurrent()
}

// closeLightbox removes the overlay and returns to the untouched grid
func (ui *RootUI) closeLightbox() {
	if !ui.state.IsOpen() {
		return
	}
	ui.state.Close()
	ui.window.Canvas().Overlays().Remove(ui.lightbox)
}

// showPrev moves to the previous record with wraparound
func (ui *RootUI) showPrev() {
	if index := ui.state.Prev(); index >= 0 {
		ui.showCurrent()
	}
}

// showNext moves to the next record with wraparound
func (ui *RootUI) showNext() {
	if index := ui.state.Next(); index >= 0 {
		ui.showCurrent()
	}
}

// showCurrent renders the lightbox for the state's current index
func (ui *RootUI) showCurrent() {
	index := ui.state.Current()
	if index < 0 || index >= len(ui.records) {
		return
	}
	ui.lightbox.ShowRecord(ui.viewCtx, ui.records[index], ui.state.Counter())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved rebuilds the gallery services against the saved server URL
// and cache TTL, then reloads.
func (ui *RootUI) onSettingsSaved() {
	serverURL := ui.settings.GetServerURL()
	ttl := time.Duration(ui.settings.GetCacheTTLMinutes()) * time.Minute

	log.Printf("Settings saved: serverURL=%s ttl=%s", serverURL, ttl)

	ui.fetcher = gallery.NewClient(serverURL)
	ui.images = gallery.NewImageService(serverURL, ttl)

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	ui.showToast(ui.localization.GetText(KeySettingsSaved), "", "", nil)
	ui.startFetch()
}

// onSaveImage writes the record's raw bytes into the pictures directory and
// confirms with a toast whose action reveals the file.
func (ui *RootUI) onSaveImage(record model.ImageRecord) {
	go func() {
		data, err := ui.images.Raw(ui.viewCtx, record.Src)
		if err != nil {
			if ui.viewCtx.Err() != nil {
				return
			}
			log.Printf("Save failed to fetch image: id=%s err=%v", record.ID, err)
			ui.showToastAsync(ui.localization.GetText(KeySaveFailed), err.Error(), "", nil)
			return
		}

		dir, err := platform.GetPicturesDir()
		if err != nil {
			log.Printf("Save failed to resolve pictures dir: %v", err)
			ui.showToastAsync(ui.localization.GetText(KeySaveFailed), err.Error(), "", nil)
			return
		}

		name := record.Title
		if name == "" {
			name = record.ID
		}
		ext := imageproc.ExtensionFor(imageproc.DetectFormat(data))
		if ext == "" {
			ext = ".jpg"
		}

		path, err := platform.SaveImageBytes(dir, name, ext, data)
		if err != nil {
			log.Printf("Save failed to write image: id=%s err=%v", record.ID, err)
			ui.showToastAsync(ui.localization.GetText(KeySaveFailed), err.Error(), "", nil)
			return
		}

		log.Printf("Image saved: id=%s path=%s", record.ID, path)
		ui.showToastAsync(
			ui.localization.GetText(KeyImageSaved),
			path,
			ui.localization.GetText(KeyReveal),
			func() { ui.onRevealFile(path) },
		)

		if ui.settings.GetRevealAfterSave() {
			ui.onRevealFile(path)
		}
	}()
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" {
		return
	}

	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.showToastAsync(ui.localization.GetText(KeyErrorRevealFile), err.Error(), "", nil)
	}
}

// showToastAsync shows a toast from any goroutine
func (ui *RootUI) showToastAsync(title, message, actionLabel string, action func()) {
	fyne.Do(func() {
		ui.showToast(title, message, actionLabel, action)
	})
}

// showToast shows an auto-hiding popup in the top-right corner. A non-nil
// action adds one button labeled actionLabel. Must run on the UI thread.
func (ui *RootUI) showToast(title, message, actionLabel string, action func()) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	// Create close button
	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	// Layout the toast content
	rows := []fyne.CanvasObject{container.NewBorder(nil, nil, titleLabel, closeBtn)}
	if message != "" {
		messageLabel := widget.NewLabel(message)
		messageLabel.Truncation = fyne.TextTruncateEllipsis
		rows = append(rows, messageLabel)
	}
	if action != nil {
		actionBtn := widget.NewButton(actionLabel, func() {
			action()
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
		actionBtn.Importance = widget.HighImportance
		rows = append(rows, container.NewHBox(actionBtn))
	}

	// Create and position the popup
	toastPopup = widget.NewPopUp(container.NewVBox(rows...), ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastPos := fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin)

	toastPopup.Resize(fyne.NewSize(ToastWidth, ToastHeight))
	toastPopup.ShowAtPosition(toastPos)

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			toastPopup.Hide()
		})
	}()
}

// dispose cancels the in-flight work when the window closes. Late results
// are discarded by the guards in applyFetch and the image loaders.
func (ui *RootUI) dispose() {
	if ui.disposed {
		return
	}
	ui.disposed = true

	if ui.cancelFetch != nil {
		ui.cancelFetch()
	}
	ui.viewCancel()

	log.Printf("RootUI disposed")
}
