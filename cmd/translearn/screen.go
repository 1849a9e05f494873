package main

import (
	"github.com/spf13/cobra"

	"github.com/japaniel/translearn/pkg/capture"
)

func newScreenCommand() *cobra.Command {
	var region capture.Region
	command := &cobra.Command{
		Use:   "screen",
		Short: "Capture a screen region once, translate it and learn from it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			// Close waits for the learning dispatched below.
			defer a.Close()

			res := a.screen.Process(ctx, region)
			newPrinter(cmd.OutOrStdout()).result(res)
			return res.Err
		},
	}
	flags := command.Flags()
	flags.IntVar(&region.X, "x", 0, "left edge of the region")
	flags.IntVar(&region.Y, "y", 0, "top edge of the region")
	flags.IntVar(&region.Width, "width", 0, "region width")
	flags.IntVar(&region.Height, "height", 0, "region height")
	return command
}
