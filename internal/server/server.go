// Package server runs one provisions service as an HTTP process.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairyhunter13/sri-rajeswari-provisions/internal/config"
	httpapi "github.com/fairyhunter13/sri-rajeswari-provisions/internal/http"
	"github.com/fairyhunter13/sri-rajeswari-provisions/internal/obs"
	"github.com/fairyhunter13/sri-rajeswari-provisions/internal/service"
	"github.com/fairyhunter13/sri-rajeswari-provisions/internal/store"
)

// Main boots svc from the environment and blocks until SIGINT or SIGTERM.
// It returns the process exit code.
func Main(svc service.Service) int {
	cfg := config.Load(svc.DefaultAddr)
	obs.InitLogger(svc.Name, cfg.LogLevel)
	obs.Logger.Info("service_starting", "title", svc.Title)

	h, err := NewHandler(cfg, svc)
	if err != nil {
		obs.Logger.Error("service_init_error", "error", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		s := <-sigc
		obs.Logger.Info("shutdown_signal", "signal", s.String())
		cancel()
	}()

	ln, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		obs.Logger.Error("http_server_error", "error", err)
		return 1
	}
	if err := Serve(ctx, cfg, ln, h); err != nil {
		obs.Logger.Error("http_server_error", "error", err)
		return 1
	}
	obs.Logger.Info("service_stopped")
	return 0
}

// NewHandler builds the full middleware-wrapped handler of svc. The
// inventory service gets the seeded catalog.
func NewHandler(cfg config.Config, svc service.Service) (http.Handler, error) {
	var st *store.Store
	if svc.HasCatalog() {
		var err error
		if st, err = store.New(store.Seed()...); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}
	app, err := httpapi.NewApp(cfg, svc, st)
	if err != nil {
		return nil, err
	}
	return httpapi.NewRouter(app), nil
}

// Serve handles requests on ln until ctx is done, then drains in-flight
// requests for at most cfg.ShutdownTimeout.
func Serve(ctx context.Context, cfg config.Config, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		obs.Logger.Info("http_listen", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	obs.Logger.Info("shutdown_drain_begin", "timeout", cfg.ShutdownTimeout.String())
	ctxSrv, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Warn("shutdown_drain_timeout", "error", err)
		return err
	}
	obs.Logger.Info("shutdown_drain_complete")
	return <-errc
}
