package ui

// Package ui contains the Fyne-based user interface for the gallery viewer.
// It renders the load states and the responsive tile grid, hosts the
// lightbox overlay with its keyboard routing, and wires settings and
// save-to-disk actions. Chrome strings are localized via Localization;
// gallery state strings and fetch errors render verbatim.
