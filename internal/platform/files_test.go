package platform

import (
	"testing"
)

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"/home/user/Music/track.flac", true},
		{"clip.wav", true},
		{"voice.ogg", true},
		{"sample.m4a", true},
		{"old.wma", true},
		{"speech.opus", true},
		{"master.aiff", true},
		{"capture.webm", true},
		{"movie.mp4", false},
		{"document.pdf", false},
		{"noextension", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			result := IsAudioFile(tt.path)
			if result != tt.expected {
				t.Errorf("IsAudioFile(%q) = %v, expected %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestOpenExternal_EmptyTarget(t *testing.T) {
	err := OpenExternal("")
	if err == nil {
		t.Error("Expected error for empty target, got nil")
	}
}
