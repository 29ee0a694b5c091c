package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Senko-San-Coder/trackdrop/internal/model"
	"github.com/Senko-San-Coder/trackdrop/internal/recognizer"
)

type fakeRecognizer struct {
	track *recognizer.Track
	err   error
	got   []byte
}

func (f *fakeRecognizer) Recognize(ctx context.Context, audio []byte) (*recognizer.Track, error) {
	f.got = audio
	return f.track, f.err
}

type fakeSearcher struct {
	configured bool
	result     *model.RecognitionResult
	err        error
	gotArtist  string
	gotTitle   string
}

func (f *fakeSearcher) Configured() bool { return f.configured }

func (f *fakeSearcher) FindTrack(ctx context.Context, artist, title string) (*model.RecognitionResult, error) {
	f.gotArtist = artist
	f.gotTitle = title
	return f.result, f.err
}

type fakeConverter struct {
	err error
}

func (f *fakeConverter) ToMP3(ctx context.Context, audio []byte) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return audio, nil
}

func newUploadRequest(t *testing.T, field string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, "clip.mp3")
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte("audio bytes")); err != nil {
		t.Fatalf("Failed to write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/recognize", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeResult(t *testing.T, body io.Reader) model.RecognitionResult {
	t.Helper()

	var result model.RecognitionResult
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return result
}

func decodeDetail(t *testing.T, body io.Reader) string {
	t.Helper()

	var resp struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp.Detail
}

func TestRecognizeHandler_EnrichedMatch(t *testing.T) {
	rec := &fakeRecognizer{track: &recognizer.Track{Title: "Song", Subtitle: "Artist"}}
	searcher := &fakeSearcher{
		configured: true,
		result: &model.RecognitionResult{
			Title:      "Song",
			Artist:     "Artist",
			ArtworkURL: "http://sc/a.png",
			StreamURL:  "http://sc/s?client_id=cid",
		},
	}

	handler := NewRecognizeHandler(rec, searcher, &fakeConverter{}, 0, NewLogger(io.Discard, "error"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newUploadRequest(t, "file"))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	result := decodeResult(t, w.Body)
	if result.StreamURL != "http://sc/s?client_id=cid" {
		t.Errorf("Expected enriched stream URL, got %q", result.StreamURL)
	}

	if searcher.gotArtist != "Artist" || searcher.gotTitle != "Song" {
		t.Errorf("Searcher called with artist=%q title=%q", searcher.gotArtist, searcher.gotTitle)
	}

	if string(rec.got) != "audio bytes" {
		t.Errorf("Recognizer received unexpected audio: %q", rec.got)
	}
}

func TestRecognizeHandler_ProviderFallback(t *testing.T) {
	rec := &fakeRecognizer{track: &recognizer.Track{
		Title:    "Song",
		Subtitle: "Artist",
		Images:   []recognizer.Image{{URL: "http://p/a.png"}},
	}}

	tests := []struct {
		name     string
		searcher *fakeSearcher
	}{
		{"unconfigured searcher", &fakeSearcher{configured: false}},
		{"search miss", &fakeSearcher{configured: true, err: errors.New("no results")}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler := NewRecognizeHandler(rec, test.searcher, &fakeConverter{}, 0, NewLogger(io.Discard, "error"))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, newUploadRequest(t, "file"))

			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", w.Code)
			}

			result := decodeResult(t, w.Body)
			if result.Title != "Song" || result.Artist != "Artist" {
				t.Errorf("Unexpected fallback metadata: %+v", result)
			}
			if result.ArtworkURL != "http://p/a.png" {
				t.Errorf("Expected provider artwork, got %q", result.ArtworkURL)
			}
			if result.StreamURL != "" {
				t.Errorf("Expected no stream URL, got %q", result.StreamURL)
			}
		})
	}
}

func TestRecognizeHandler_NoMatch(t *testing.T) {
	rec := &fakeRecognizer{err: recognizer.ErrNoMatch}

	handler := NewRecognizeHandler(rec, nil, &fakeConverter{}, 0, NewLogger(io.Discard, "error"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newUploadRequest(t, "file"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
	if detail := decodeDetail(t, w.Body); detail != DetailNotRecognized {
		t.Errorf("Expected detail %q, got %q", DetailNotRecognized, detail)
	}
}

func TestRecognizeHandler_ConversionFailureIsNoMatch(t *testing.T) {
	rec := &fakeRecognizer{track: &recognizer.Track{Title: "Song"}}
	conv := &fakeConverter{err: errors.New("ffmpeg exploded")}

	handler := NewRecognizeHandler(rec, nil, conv, 0, NewLogger(io.Discard, "error"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newUploadRequest(t, "file"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
}

func TestRecognizeHandler_ProviderFailure(t *testing.T) {
	rec := &fakeRecognizer{err: errors.New("provider timeout")}

	handler := NewRecognizeHandler(rec, nil, &fakeConverter{}, 0, NewLogger(io.Discard, "error"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newUploadRequest(t, "file"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
	if detail := decodeDetail(t, w.Body); detail != DetailUnexpected {
		t.Errorf("Expected detail %q, got %q", DetailUnexpected, detail)
	}
}

func TestRecognizeHandler_BadRequests(t *testing.T) {
	handler := NewRecognizeHandler(&fakeRecognizer{}, nil, &fakeConverter{}, 0, NewLogger(io.Discard, "error"))

	t.Run("wrong method", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recognize", nil))
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("Expected status 405, got %d", w.Code)
		}
	})

	t.Run("wrong field name", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newUploadRequest(t, "audio"))
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
		if detail := decodeDetail(t, w.Body); detail != DetailMissingFile {
			t.Errorf("Expected detail %q, got %q", DetailMissingFile, detail)
		}
	})
}

func TestHealthzHandler(t *testing.T) {
	w := httptest.NewRecorder()
	HealthzHandler(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.OK {
		t.Error("Expected ok=true")
	}
}

func TestServer_Routes(t *testing.T) {
	cfg := Default()
	srv := New(cfg, NewLogger(io.Discard, "error"), &fakeRecognizer{err: recognizer.ErrNoMatch}, nil, &fakeConverter{})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("Health check failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 from /healthz, got %d", resp.StatusCode)
	}
}
