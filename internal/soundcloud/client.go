package soundcloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Senko-San-Coder/trackdrop/internal/model"
)

// DefaultBaseURL is the public SoundCloud API endpoint
const DefaultBaseURL = "https://api.soundcloud.com"

// ErrNoResults is returned when the search yields no tracks.
var ErrNoResults = errors.New("no soundcloud results")

// Client searches SoundCloud for a recognized track to obtain artwork
// and a playable stream URL.
type Client struct {
	baseURL  string
	clientID string
	http     *http.Client
}

// NewClient creates a SoundCloud search client
func NewClient(baseURL, clientID string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		baseURL:  baseURL,
		clientID: clientID,
		http:     client,
	}
}

// Configured reports whether a client_id is available. Without one the
// search cannot be performed and callers should fall back to provider
// metadata.
func (c *Client) Configured() bool {
	return c.clientID != ""
}

type trackResponse struct {
	Title      string `json:"title"`
	StreamURL  string `json:"stream_url"`
	ArtworkURL string `json:"artwork_url"`
	User       struct {
		Username  string `json:"username"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user"`
}

// FindTrack searches for "artist - title" and returns the first hit as a
// recognition result with the client_id appended to the stream URL.
func (c *Client) FindTrack(ctx context.Context, artist, title string) (*model.RecognitionResult, error) {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("q", fmt.Sprintf("%s - %s", artist, title))
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tracks?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search tracks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("soundcloud status %d", resp.StatusCode)
	}

	var tracks []trackResponse
	if err := json.NewDecoder(resp.Body).Decode(&tracks); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(tracks) == 0 {
		return nil, ErrNoResults
	}

	track := tracks[0]

	// Tracks without uploaded artwork fall back to the uploader's avatar.
	artwork := track.ArtworkURL
	if artwork == "" {
		artwork = track.User.AvatarURL
	}

	stream := ""
	if track.StreamURL != "" {
		stream = track.StreamURL + "?client_id=" + url.QueryEscape(c.clientID)
	}

	return &model.RecognitionResult{
		Title:      track.Title,
		Artist:     track.User.Username,
		ArtworkURL: artwork,
		StreamURL:  stream,
	}, nil
}
