package platform

// Package platform contains OS/platform integration glue: audio file
// detection and opening URLs with the default app.
