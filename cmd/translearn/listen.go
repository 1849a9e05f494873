package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/japaniel/translearn/pkg/events"
)

func newListenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Capture the microphone and print each translated chunk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			ch, unsubscribe := a.bus.Subscribe(events.DefaultBuffer)
			defer unsubscribe()
			p := newPrinter(cmd.OutOrStdout())
			go func() {
				for e := range ch {
					p.event(e)
				}
			}()

			slog.Info("listening to microphone", "device", cfg.Audio.Device, "engine", cfg.Recognition.STTEngine)
			return newMicrophone(cfg).Run(ctx, a.audio.HandleBuffer)
		},
	}
}
