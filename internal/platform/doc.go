package platform

// Package platform contains OS integration for saving images to disk:
// filesystem helpers, filename sanitizing, and OS open/reveal.
