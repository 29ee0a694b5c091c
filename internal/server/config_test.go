package server

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trackdropd.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
listen:
  host: 127.0.0.1
  port: 9090
provider:
  url: https://fingerprint.example.com
  api_key: secret
soundcloud:
  client_id: cid
convert:
  ffmpeg_binary: /usr/local/bin/ffmpeg
upload:
  max_bytes: 1048576
logging:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Expected addr 127.0.0.1:9090, got %s", cfg.Addr())
	}
	if cfg.Provider.URL != "https://fingerprint.example.com" || cfg.Provider.APIKey != "secret" {
		t.Errorf("Unexpected provider config: %+v", cfg.Provider)
	}
	if cfg.SoundCloud.ClientID != "cid" {
		t.Errorf("Expected soundcloud client_id 'cid', got %q", cfg.SoundCloud.ClientID)
	}
	if cfg.Convert.FFmpegBinary != "/usr/local/bin/ffmpeg" {
		t.Errorf("Unexpected ffmpeg binary: %q", cfg.Convert.FFmpegBinary)
	}
	if cfg.Upload.MaxBytes != 1048576 {
		t.Errorf("Expected max_bytes 1048576, got %d", cfg.Upload.MaxBytes)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.Logging.Level)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
provider:
  url: https://fingerprint.example.com
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Listen.Host != DefaultHost || cfg.Listen.Port != DefaultPort {
		t.Errorf("Expected default listen config, got %+v", cfg.Listen)
	}
	if cfg.Upload.MaxBytes != DefaultMaxUploadBytes {
		t.Errorf("Expected default max bytes, got %d", cfg.Upload.MaxBytes)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("Expected default log level, got %q", cfg.Logging.Level)
	}
}

func TestSplitListenAddr(t *testing.T) {
	tests := []struct {
		addr     string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{"127.0.0.1:9090", "127.0.0.1", 9090, false},
		{":8080", DefaultHost, 8080, false},
		{"localhost:0", "", 0, true},
		{"no-port", "", 0, true},
		{"host:notaport", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			host, port, err := SplitListenAddr(tt.addr)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tt.addr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitListenAddr(%q) failed: %v", tt.addr, err)
			}
			if host != tt.wantHost || port != tt.wantPort {
				t.Errorf("Expected %s:%d, got %s:%d", tt.wantHost, tt.wantPort, host, port)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load("/does/not/exist.yml"); err == nil {
		t.Error("Expected error for missing file")
	}

	path := writeConfig(t, "listen: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed yaml")
	}
}
