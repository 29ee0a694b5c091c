package model

// Fallbacks shown when the recognition endpoint omits metadata fields.
const (
	UnknownTitle  = "Unknown Title"
	UnknownArtist = "Unknown Artist"
)

// RecognitionResult is the JSON payload returned by POST /recognize.
// Every field is optional; presence is checked explicitly instead of
// trusting the payload shape.
type RecognitionResult struct {
	Title      string `json:"title,omitempty"`
	Artist     string `json:"artist,omitempty"`
	ArtworkURL string `json:"artwork_url,omitempty"`
	StreamURL  string `json:"stream_url,omitempty"`
}

// DisplayTitle returns the track title, or UnknownTitle when absent
func (r *RecognitionResult) DisplayTitle() string {
	if r.Title == "" {
		return UnknownTitle
	}
	return r.Title
}

// DisplayArtist returns the artist name, or UnknownArtist when absent
func (r *RecognitionResult) DisplayArtist() string {
	if r.Artist == "" {
		return UnknownArtist
	}
	return r.Artist
}

// HasArtwork returns true if the result carries an artwork URL
func (r *RecognitionResult) HasArtwork() bool {
	return r.ArtworkURL != ""
}

// HasStream returns true if the result carries a playable stream URL
func (r *RecognitionResult) HasStream() bool {
	return r.StreamURL != ""
}

// IsEmpty reports whether the result carries no usable data at all.
// A 2xx response decoding to an empty result is treated as "no results".
func (r *RecognitionResult) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.Title == "" && r.Artist == "" && r.ArtworkURL == "" && r.StreamURL == ""
}
