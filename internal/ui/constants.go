package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconReload   = "⟳"
	IconClose    = "×"
	IconPrev     = "‹"
	IconNext     = "›"
	IconSave     = "⤓"
)

// Fixed view strings. These render verbatim in the gallery states and are
// deliberately not localized; chrome strings go through Localization instead.
const (
	LoadingText      = "Loading gallery…"
	ErrorHeadingText = "Something went wrong"
	TryAgainText     = "Try Again"
	EmptyHeadingText = "No photos yet"
	EmptyBodyText    = "Check back soon."
)

// Grid breakpoints (window width, dp) and tile geometry.
// Tiles keep a 3:4 aspect: cell height = width * TileAspectRatio.
const (
	GridTwoColumnMinWidth   float32 = 560
	GridThreeColumnMinWidth float32 = 880
	GridFourColumnMinWidth  float32 = 1200
	GridMaxColumns                  = 4

	TileAspectRatio float32 = 4.0 / 3.0
	TileMinWidth    float32 = 220
	GridPadding     float32 = 8
)

// Caption overlay sizing (tile bottom edge)
const (
	CaptionOverlayHeight float32 = 64
)

// Lightbox sizing
const (
	LightboxNavButtonWidth float32 = 56
	LightboxCaptionHeight  float32 = 72
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 110
	ToastMargin   float32 = 20
	ToastAutoHide         = 4 * time.Second
)

// Window sizing
const (
	WindowDefaultWidth  float32 = 1000
	WindowDefaultHeight float32 = 760
	WindowMinWidth      float32 = 420
	WindowMinHeight     float32 = 560
)
