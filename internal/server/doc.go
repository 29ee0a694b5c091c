// Package server implements the recognition HTTP service behind
// POST /recognize: it converts uploaded audio to MP3, fingerprints it
// against the provider, and enriches matches with SoundCloud metadata.
package server
