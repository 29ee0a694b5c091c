package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/Senko-San-Coder/trackdrop/internal/convert"
	"github.com/Senko-San-Coder/trackdrop/internal/model"
	"github.com/Senko-San-Coder/trackdrop/internal/recognizer"
)

// User-facing error details, mirrored by the client's outcome classes
const (
	DetailNotRecognized = "Track not recognized."
	DetailMissingFile   = "Missing multipart field 'file'."
	DetailUnexpected    = "An unexpected error occurred."
)

// TrackSearcher enriches provider metadata with artwork and a stream URL.
type TrackSearcher interface {
	Configured() bool
	FindTrack(ctx context.Context, artist, title string) (*model.RecognitionResult, error)
}

// RecognizeHandler implements POST /recognize: multipart audio in,
// recognition result JSON out.
type RecognizeHandler struct {
	recognizer recognizer.Recognizer
	searcher   TrackSearcher
	converter  convert.Converter
	maxBytes   int64
	logger     *log.Logger
}

// NewRecognizeHandler creates the /recognize handler
func NewRecognizeHandler(rec recognizer.Recognizer, searcher TrackSearcher, conv convert.Converter, maxBytes int64, logger *log.Logger) *RecognizeHandler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}

	return &RecognizeHandler{
		recognizer: rec,
		searcher:   searcher,
		converter:  conv,
		maxBytes:   maxBytes,
		logger:     logger,
	}
}

func (h *RecognizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, DetailMissingFile)
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		h.logger.Warn("failed to read upload", "file", header.Filename, "error", err)
		writeError(w, http.StatusBadRequest, DetailMissingFile)
		return
	}

	mp3, err := h.converter.ToMP3(r.Context(), audio)
	if err != nil {
		// Unusable audio and unrecognized audio look the same to the
		// caller: there is no track to report.
		h.logger.Info("conversion failed", "file", header.Filename, "error", err)
		writeError(w, http.StatusNotFound, DetailNotRecognized)
		return
	}

	track, err := h.recognizer.Recognize(r.Context(), mp3)
	if errors.Is(err, recognizer.ErrNoMatch) {
		h.logger.Info("no match", "file", header.Filename)
		writeError(w, http.StatusNotFound, DetailNotRecognized)
		return
	}
	if err != nil {
		h.logger.Error("provider failure", "file", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, DetailUnexpected)
		return
	}

	if h.searcher != nil && h.searcher.Configured() {
		if result, err := h.searcher.FindTrack(r.Context(), track.ArtistName(), track.Title); err == nil {
			writeJSON(w, http.StatusOK, result)
			return
		} else {
			h.logger.Warn("soundcloud lookup failed", "title", track.Title, "error", err)
		}
	}

	// No enrichment available: answer with provider metadata and no stream.
	writeJSON(w, http.StatusOK, &model.RecognitionResult{
		Title:      track.Title,
		Artist:     track.ArtistName(),
		ArtworkURL: track.ArtworkURL(),
	})
}

// HealthzHandler reports liveness
func HealthzHandler(w http.ResponseWriter, r *http.Request) {
	type response struct {
		OK bool `json:"ok"`
	}

	writeJSON(w, http.StatusOK, response{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	type response struct {
		Detail string `json:"detail"`
	}

	writeJSON(w, status, response{Detail: detail})
}
