package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/Senko-San-Coder/trackdrop/internal/convert"
	"github.com/Senko-San-Coder/trackdrop/internal/recognizer"
	"github.com/Senko-San-Coder/trackdrop/internal/server"
	"github.com/Senko-San-Coder/trackdrop/internal/soundcloud"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const defaultConfigPath = "trackdropd.yml"

func main() {
	app := &cli.Command{
		Name:    "trackdropd",
		Usage:   "Audio recognition server for TrackDrop",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				Value:   defaultConfigPath,
			},
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "Override the listen address (host:port)",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		server.NewLogger(nil, "error").Fatal("server failed", "error", err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	if listen := cmd.String("listen"); listen != "" {
		if err := applyListenOverride(cfg, listen); err != nil {
			return err
		}
	}

	logger := server.NewLogger(nil, cfg.Logging.Level)
	logger.Info("starting trackdropd", "version", version)

	rec := recognizer.NewClient(cfg.Provider.URL, cfg.Provider.APIKey, nil)
	searcher := soundcloud.NewClient(cfg.SoundCloud.URL, cfg.SoundCloud.ClientID, nil)
	conv := convert.NewService(cfg.Convert.FFmpegBinary)

	if !searcher.Configured() {
		logger.Warn("soundcloud client_id not set, stream enrichment disabled")
	}

	srv := server.New(cfg, logger, rec, searcher, conv)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

// loadConfig reads the YAML config, falling back to defaults when the
// default config file is absent. An explicitly named file must exist.
func loadConfig(path string) (*server.Config, error) {
	if path == defaultConfigPath {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return server.Default(), nil
		}
	}
	return server.Load(path)
}

// applyListenOverride parses a host:port flag into the config
func applyListenOverride(cfg *server.Config, listen string) error {
	host, port, err := server.SplitListenAddr(listen)
	if err != nil {
		return err
	}

	cfg.Listen.Host = host
	cfg.Listen.Port = port
	return nil
}
