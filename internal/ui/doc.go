package ui

// Package ui provides the desktop user interface: the drop surface,
// the recognition result card, settings, and window wiring.
