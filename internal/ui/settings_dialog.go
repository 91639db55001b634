package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pchrisoc/zymome/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 380
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverURLEntry *widget.Entry
	cacheTTLEntry  *widget.Entry
	languageSelect *widget.Select
	revealCheck    *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after a confirmed save, once the new values are persisted.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Gallery server base URL
	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerURL)
	sd.serverURLEntry.Validator = func(input string) error {
		if strings.TrimSpace(input) == "" {
			return nil // Empty is allowed
		}
		_, err := config.NormalizeServerURL(input)
		return err
	}

	// Image cache TTL in minutes
	sd.cacheTTLEntry = widget.NewEntry()
	sd.cacheTTLEntry.SetPlaceHolder("1-240")

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.revealCheck = widget.NewCheck(sd.localization.GetText(KeyRevealAfterSave), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyGallerySection)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyServerURL)+":"),
		sd.serverURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyCacheTTL)+":"),
		sd.cacheTTLEntry,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyInterfaceSection)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		sd.revealCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetServerURL())
	sd.cacheTTLEntry.SetText(strconv.Itoa(sd.settings.GetCacheTTLMinutes()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.revealCheck.SetChecked(sd.settings.GetRevealAfterSave())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// The setter rejects URLs that do not normalize; invalid input keeps
	// the previous value rather than breaking the next fetch.
	if sd.serverURLEntry.Text != "" {
		sd.settings.SetServerURL(sd.serverURLEntry.Text)
	}

	if sd.cacheTTLEntry.Text != "" {
		if minutes, err := strconv.Atoi(sd.cacheTTLEntry.Text); err == nil {
			sd.settings.SetCacheTTLMinutes(minutes)
		}
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetRevealAfterSave(sd.revealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
