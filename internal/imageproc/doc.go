package imageproc

// Package imageproc decodes gallery image bytes and applies the fixed
// geometry the UI needs: 3:4 cover-cropped tile rasters and aspect-preserving
// fit for the lightbox.
