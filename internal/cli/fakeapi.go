package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"pet-adoption-portal/internal/fakeapi"
	"pet-adoption-portal/internal/platform/logger"
)

const shutdownTimeout = 5 * time.Second

// newFakeAPICmd levanta el backend en memoria para desarrollo local.
func newFakeAPICmd(rt *runtime) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "fake-api",
		Short: "Run an in-memory backend with seed data on --addr",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := rt.cfg
			if addr != "" {
				cfg.FakeAPI.Addr = addr
			}

			log := logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.Log.Level),
				Format: logger.ParseFormat(cfg.Log.Format),
				App:    cfg.Log.App,
				Out:    cmd.ErrOrStderr(),
			}).With(map[string]any{"component": "fake-api"})

			srv, err := fakeapi.New(fakeapi.Options{
				JWTSecret: cfg.FakeAPI.JWTSecret,
				TokenTTL:  cfg.FakeAPI.TokenTTL,
				Seed:      cfg.FakeAPI.Seed,
				RateLimit: cfg.FakeAPI.RateLimit,
				Burst:     cfg.FakeAPI.Burst,
				Log:       log,
			})
			if err != nil {
				return err
			}

			return serve(cmd.Context(), &http.Server{
				Addr:         cfg.FakeAPI.Addr,
				Handler:      srv.Handler(),
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
			}, log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides FAKE_API_ADDR)")
	return cmd
}

// serve corre hs hasta que ctx se cancela y después hace un apagado ordenado.
func serve(ctx context.Context, hs *http.Server, log logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": hs.Addr})
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
