package convert

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// FFmpeg constants for audio transcoding
const (
	FFmpegCommand = "ffmpeg"

	AudioCodec   = "libmp3lame"
	AudioBitrate = "192k"
	OutputFormat = "mp3"

	InputPipe  = "pipe:0"
	OutputPipe = "pipe:1"
)

// Converter transcodes uploaded audio to MP3 before fingerprinting.
type Converter interface {
	ToMP3(ctx context.Context, audio []byte) ([]byte, error)
}

// Service converts audio using an ffmpeg subprocess over stdin/stdout,
// so uploads never touch the filesystem.
type Service struct {
	binary string
}

// NewService creates a new conversion service
func NewService(binary string) *Service {
	if binary == "" {
		binary = FFmpegCommand
	}
	return &Service{binary: binary}
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func (s *Service) BuildFFmpegArgs() []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", InputPipe, // read source audio from stdin
		"-vn", // drop any embedded video/artwork stream
		"-acodec", AudioCodec,
		"-b:a", AudioBitrate,
		"-f", OutputFormat,
		OutputPipe, // write MP3 to stdout
	}
}

// ToMP3 converts arbitrary audio bytes to MP3
func (s *Service) ToMP3(ctx context.Context, audio []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, s.binary, s.BuildFFmpegArgs()...)

	var out, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(audio)
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("run ffmpeg: %w: %s", err, detail)
		}
		return nil, fmt.Errorf("run ffmpeg: %w", err)
	}

	if out.Len() == 0 {
		return nil, fmt.Errorf("ffmpeg produced no output")
	}

	return out.Bytes(), nil
}
