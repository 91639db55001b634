package model

// Package model defines domain data structures used across the app: gallery
// image records as served by the API, fetch lifecycle phases, and the
// lightbox state machine. Structures are designed for direct rendering in
// the UI and explicit state transitions.
