package server

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Default configuration values
const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 8080
	DefaultMaxUploadBytes = 25 << 20 // 25 MiB
	DefaultLogLevel       = "info"
)

// Config describes the recognition server configuration
type Config struct {
	Listen     ListenConfig     `yaml:"listen"`
	Provider   ProviderConfig   `yaml:"provider"`
	SoundCloud SoundCloudConfig `yaml:"soundcloud"`
	Convert    ConvertConfig    `yaml:"convert"`
	Upload     UploadConfig     `yaml:"upload"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ListenConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ProviderConfig points at the fingerprint provider API
type ProviderConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

// SoundCloudConfig holds search credentials. An empty client_id disables
// enrichment; recognition still works on provider metadata alone.
type SoundCloudConfig struct {
	URL      string `yaml:"url"`
	ClientID string `yaml:"client_id"`
}

type ConvertConfig struct {
	FFmpegBinary string `yaml:"ffmpeg_binary"`
}

type UploadConfig struct {
	MaxBytes int64 `yaml:"max_bytes"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a config with usable defaults for local development
func Default() *Config {
	return &Config{
		Listen:  ListenConfig{Host: DefaultHost, Port: DefaultPort},
		Upload:  UploadConfig{MaxBytes: DefaultMaxUploadBytes},
		Logging: LoggingConfig{Level: DefaultLogLevel},
	}
}

// Load reads a YAML config file, filling in defaults for omitted fields
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Listen.Host == "" {
		cfg.Listen.Host = DefaultHost
	}
	if cfg.Listen.Port == 0 {
		cfg.Listen.Port = DefaultPort
	}
	if cfg.Upload.MaxBytes <= 0 {
		cfg.Upload.MaxBytes = DefaultMaxUploadBytes
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}

	return cfg, nil
}

// Addr returns the host:port the server should listen on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Listen.Host, c.Listen.Port)
}

// SplitListenAddr parses a host:port string. An empty host defaults to
// the default listen host.
func SplitListenAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("parse listen address: %w", err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("invalid listen port: %q", portStr)
	}

	if host == "" {
		host = DefaultHost
	}
	return host, port, nil
}
