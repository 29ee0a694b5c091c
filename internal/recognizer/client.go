package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNoMatch is returned when the provider cannot identify the track.
var ErrNoMatch = errors.New("no matching track")

// Track holds the metadata the fingerprint provider returns for a match.
// Some providers put the artist in "subtitle", others in "artist".
type Track struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Artist   string  `json:"artist"`
	Images   []Image `json:"images"`
}

// Image is a single artwork entry from the provider
type Image struct {
	URL string `json:"url"`
}

// ArtistName returns the artist, preferring the subtitle field
func (t *Track) ArtistName() string {
	if t.Subtitle != "" {
		return t.Subtitle
	}
	return t.Artist
}

// ArtworkURL returns the first artwork URL, or "" when none is present
func (t *Track) ArtworkURL() string {
	if len(t.Images) == 0 {
		return ""
	}
	return t.Images[0].URL
}

// Recognizer defines audio fingerprint matching behavior.
type Recognizer interface {
	Recognize(ctx context.Context, audio []byte) (*Track, error)
}

// Client communicates with the fingerprint provider's REST API.
type Client struct {
	apiURL string
	apiKey string
	http   *http.Client
}

// NewClient creates a fingerprint provider client
func NewClient(apiURL, apiKey string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		http:   client,
	}
}

// Recognize submits MP3 audio for identification. ErrNoMatch is returned
// when the provider answers without a track.
func (c *Client) Recognize(ctx context.Context, audio []byte) (*Track, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/v1/recognize", bytes.NewReader(audio))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "audio/mpeg")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider status %d", resp.StatusCode)
	}

	var payload struct {
		Track *Track `json:"track"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if payload.Track == nil {
		return nil, ErrNoMatch
	}

	return payload.Track, nil
}
