package huntserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/KiyoScript/scavenger-hunt/internal/hunt"
)

// Config captures the settings for serving a hunt.
type Config struct {
	Addr    string
	Hunt    hunt.Hunt
	BaseURL string
}

// Serve starts an HTTP server hosting the hunt until the context is done.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("huntserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("huntserver: addr is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://" + cfg.Addr
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: NewHandler(cfg.Hunt, baseURL),
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
