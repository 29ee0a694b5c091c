package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Senko-San-Coder/trackdrop/internal/convert"
	"github.com/Senko-San-Coder/trackdrop/internal/recognizer"
)

// Server is the recognition HTTP service
type Server struct {
	cfg     *Config
	logger  *log.Logger
	handler http.Handler
}

// New wires the recognition pipeline into an HTTP server
func New(cfg *Config, logger *log.Logger, rec recognizer.Recognizer, searcher TrackSearcher, conv convert.Converter) *Server {
	mux := http.NewServeMux()
	mux.Handle("/recognize", NewRecognizeHandler(rec, searcher, conv, cfg.Upload.MaxBytes, logger))
	mux.HandleFunc("/healthz", HealthzHandler)

	return &Server{
		cfg:    cfg,
		logger: logger,
		handler: Chain(mux,
			Recover(logger),
			Logging(logger),
		),
	}
}

// Handler returns the middleware-wrapped root handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until the context is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr())
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
