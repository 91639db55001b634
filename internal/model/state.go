package model

import "fmt"

// LoadPhase represents the lifecycle of a gallery fetch
type LoadPhase string

const (
	// LoadPhaseLoading means the fetch is in flight
	LoadPhaseLoading LoadPhase = "Loading"

	// LoadPhaseError means the fetch failed
	LoadPhaseError LoadPhase = "Error"

	// LoadPhaseLoaded means the fetch succeeded, possibly with zero records
	LoadPhaseLoaded LoadPhase = "Loaded"
)

// String returns the string representation of LoadPhase
func (lp LoadPhase) String() string {
	return string(lp)
}

// IsSettled returns true if the fetch reached a terminal state
func (lp LoadPhase) IsSettled() bool {
	return lp == LoadPhaseError || lp == LoadPhaseLoaded
}

// LightboxState tracks which record the lightbox shows, if any. The zero
// value is closed over an empty gallery. While open, 0 <= index < size
// always holds, which makes wraparound navigation total.
type LightboxState struct {
	open  bool
	index int
	size  int
}

// NewLightboxState creates a closed state over a gallery of the given size
func NewLightboxState(size int) *LightboxState {
	if size < 0 {
		size = 0
	}
	return &LightboxState{size: size}
}

// Open shows the record at index and reports whether the state changed.
// Out-of-range indexes are rejected, so an empty gallery can never open.
func (ls *LightboxState) Open(index int) bool {
	if index < 0 || index >= ls.size {
		return false
	}
	ls.open = true
	ls.index = index
	return true
}

// Close returns to the closed state. Closing a closed state is a no-op.
func (ls *LightboxState) Close() {
	ls.open = false
}

// IsOpen returns true while a record is showing
func (ls *LightboxState) IsOpen() bool {
	return ls.open
}

// Current returns the index of the record showing, or -1 when closed
func (ls *LightboxState) Current() int {
	if !ls.open {
		return -1
	}
	return ls.index
}

// Size returns the number of records the state navigates over
func (ls *LightboxState) Size() int {
	return ls.size
}

// Next advances to the following record, wrapping from the last back to the
// first. It returns the new index, or -1 when the lightbox is closed.
func (ls *LightboxState) Next() int {
	if !ls.open {
		return -1
	}
	ls.index = (ls.index + 1) % ls.size
	return ls.index
}

// Prev steps back to the preceding record, wrapping from the first to the
// last. It returns the new index, or -1 when the lightbox is closed.
func (ls *LightboxState) Prev() int {
	if !ls.open {
		return -1
	}
	ls.index = (ls.index - 1 + ls.size) % ls.size
	return ls.index
}

// Counter returns the position indicator shown under the image, e.g. "2 / 12".
// It is empty while the lightbox is closed.
func (ls *LightboxState) Counter() string {
	if !ls.open {
		return ""
	}
	return fmt.Sprintf("%d / %d", ls.index+1, ls.size)
}
