package ui

// Localization manages UI text translations for chrome strings. The gallery
// state strings (loading, error, empty), the fetch error message, and the
// lightbox counter are contract strings rendered verbatim and never pass
// through here.
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyFile             = "file"
	KeyServerURL        = "server_url"
	KeyCacheTTL         = "cache_ttl"
	KeyRevealAfterSave  = "reveal_after_save"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyReload           = "reload"
	KeyTakenPrefix      = "taken_prefix"
	KeyUploadedPrefix   = "uploaded_prefix"
	KeyPhotoCount       = "photo_count"
	KeySaveImage        = "save_image"
	KeyImageSaved       = "image_saved"
	KeySaveFailed       = "save_failed"
	KeyReveal           = "reveal"
	KeyErrorRevealFile  = "error_reveal_file"
	KeyInterfaceSection = "interface_section"
	KeyGallerySection   = "gallery_section"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Zymome",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyFile:             "File",
		KeyServerURL:        "Server URL",
		KeyCacheTTL:         "Image cache TTL (minutes)",
		KeyRevealAfterSave:  "Reveal images after saving",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved",
		KeyReload:           "Reload",
		KeyTakenPrefix:      "Taken",
		KeyUploadedPrefix:   "Uploaded",
		KeyPhotoCount:       "%d photos",
		KeySaveImage:        "Save image",
		KeyImageSaved:       "Saved to",
		KeySaveFailed:       "Could not save image",
		KeyReveal:           "Reveal",
		KeyErrorRevealFile:  "Error revealing file",
		KeyInterfaceSection: "Interface",
		KeyGallerySection:   "Gallery",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Zymome",
		KeySettings:         "Настройки",
		KeyLanguage:         "Язык",
		KeyFile:             "Файл",
		KeyServerURL:        "Адрес сервера",
		KeyCacheTTL:         "Кэш изображений (минуты)",
		KeyRevealAfterSave:  "Показывать сохранённые изображения",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки сохранены",
		KeyReload:           "Обновить",
		KeyTakenPrefix:      "Снято",
		KeyUploadedPrefix:   "Загружено",
		KeyPhotoCount:       "%d фото",
		KeySaveImage:        "Сохранить изображение",
		KeyImageSaved:       "Сохранено в",
		KeySaveFailed:       "Не удалось сохранить изображение",
		KeyReveal:           "Показать",
		KeyErrorRevealFile:  "Ошибка открытия файла",
		KeyInterfaceSection: "Интерфейс",
		KeyGallerySection:   "Галерея",
	}
}
