package ui

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"

	"fyne.io/fyne/v2"
)

// FetchArtwork downloads cover art and wraps it as a Fyne resource.
// The caller is expected to run this off the UI thread.
func FetchArtwork(ctx context.Context, client *http.Client, artworkURL string) (fyne.Resource, error) {
	if artworkURL == "" {
		return nil, fmt.Errorf("artwork URL is empty")
	}

	if client == nil {
		client = &http.Client{Timeout: ArtworkFetchTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, artworkURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create artwork request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch artwork: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch artwork: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read artwork: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("artwork response is empty")
	}

	name := path.Base(artworkURL)
	if name == "." || name == "/" {
		name = "artwork"
	}

	return fyne.NewStaticResource(name, data), nil
}
