package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/japaniel/translearn/pkg/events"
)

func newServeCommand() *cobra.Command {
	var addr string
	command := &cobra.Command{
		Use:   "serve",
		Short: "Serve screen ingestion, vocabulary and the event stream over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if cfg.Audio.Enabled {
				go func() {
					if err := newMicrophone(cfg).Run(ctx, a.audio.HandleBuffer); err != nil {
						slog.Error("audio capture stopped", "err", err)
					}
				}()
			}

			srv := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           newRouter(a.screen, a.store, events.NewHub(a.bus)),
				ReadHeaderTimeout: 10 * time.Second,
			}
			serveErr := make(chan error, 1)
			go func() {
				slog.Info("listening", "addr", cfg.Server.Addr, "audio", cfg.Audio.Enabled)
				serveErr <- srv.ListenAndServe()
			}()

			select {
			case err := <-serveErr:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("http server: %w", err)
				}
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	command.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return command
}
