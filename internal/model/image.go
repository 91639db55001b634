package model

import (
	"time"
)

// ImageRecord represents a single gallery entry as served by the gallery API.
// JSON field names mirror the wire payload exactly. Timestamps stay raw
// strings so malformed values can degrade at display time instead of failing
// the whole decode.
type ImageRecord struct {
	ID          string `json:"id"`          // stable identity, render/cache key
	Src         string `json:"src"`         // absolute or server-relative image URL
	Alt         string `json:"alt"`         // accessibility text, may be empty
	Title       string `json:"title"`       // caption headline, may be empty
	CreatedTime string `json:"createdTime"` // upload timestamp, may be empty or malformed
	TakenDate   string `json:"takenDate"`   // capture timestamp, may be empty or malformed
}

// DateKind identifies which timestamp a record displays
type DateKind string

const (
	// DateTaken means the record shows its capture date
	DateTaken DateKind = "Taken"

	// DateUploaded means the record shows its upload date
	DateUploaded DateKind = "Uploaded"

	// DateNone means the record has no date line at all
	DateNone DateKind = "None"
)

// InvalidDateText is rendered when a timestamp is present but unparsable
const InvalidDateText = "Invalid Date"

// dateDisplayFormat is the layout used for rendered date lines
const dateDisplayFormat = "Jan 2, 2006"

// dateParseLayouts are tried in order when parsing API timestamps
var dateParseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DisplayAlt returns the alt text, or a fixed placeholder when alt is empty
func (ir *ImageRecord) DisplayAlt() string {
	if ir.Alt == "" {
		return "Gallery image"
	}
	return ir.Alt
}

// DateStamp returns which date line the record shows and its formatted text.
// takenDate wins over createdTime on presence, not validity: a present but
// unparsable value degrades to InvalidDateText instead of falling through.
func (ir *ImageRecord) DateStamp() (DateKind, string) {
	if ir.TakenDate != "" {
		return DateTaken, formatDate(ir.TakenDate)
	}
	if ir.CreatedTime != "" {
		return DateUploaded, formatDate(ir.CreatedTime)
	}
	return DateNone, ""
}

// formatDate parses a raw API timestamp and renders it for display
func formatDate(raw string) string {
	for _, layout := range dateParseLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(dateDisplayFormat)
		}
	}
	return InvalidDateText
}
