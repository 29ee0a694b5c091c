package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconMusic    = "🎵"
	IconLanguage = "🌐"
)

// Exact user-facing messages. These are intentionally not localized so
// the wording stays stable across languages.
const (
	MsgNoStreamURL     = "No stream URL available."
	MsgUnsupportedFile = "Unsupported file type. Drop an audio file."
)

// Layout sizing
const (
	WindowMinWidth  float32 = 420
	WindowMinHeight float32 = 480

	DropZoneMinWidth  float32 = 380
	DropZoneMinHeight float32 = 180

	ArtworkSize float32 = 160
)

// Artwork fetch behavior
const (
	ArtworkFetchTimeout = 15 * time.Second
)
