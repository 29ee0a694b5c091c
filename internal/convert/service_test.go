package convert

import (
	"slices"
	"testing"
)

func TestNewService_DefaultBinary(t *testing.T) {
	service := NewService("")
	if service.binary != FFmpegCommand {
		t.Errorf("Expected default binary %q, got %q", FFmpegCommand, service.binary)
	}

	custom := NewService("/opt/ffmpeg/bin/ffmpeg")
	if custom.binary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("Expected custom binary path, got %q", custom.binary)
	}
}

func TestBuildFFmpegArgs(t *testing.T) {
	service := NewService("")
	args := service.BuildFFmpegArgs()

	if args[len(args)-1] != OutputPipe {
		t.Errorf("Expected last argument %q, got %q", OutputPipe, args[len(args)-1])
	}

	pairs := map[string]string{
		"-i":      InputPipe,
		"-acodec": AudioCodec,
		"-b:a":    AudioBitrate,
		"-f":      OutputFormat,
	}
	for flag, value := range pairs {
		idx := slices.Index(args, flag)
		if idx < 0 || idx+1 >= len(args) {
			t.Fatalf("Expected flag %q in args %v", flag, args)
		}
		if args[idx+1] != value {
			t.Errorf("Expected %s %s, got %s %s", flag, value, flag, args[idx+1])
		}
	}

	if !slices.Contains(args, "-vn") {
		t.Error("Expected -vn to strip non-audio streams")
	}
}
