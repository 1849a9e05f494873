package main

import (
	"github.com/spf13/cobra"
)

func newObservationsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "observations",
		Short: "Show recorded observations",
	}
	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List the newest observations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			conn, store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			total, err := store.CountObservations(cmd.Context())
			if err != nil {
				return err
			}
			obs, err := store.ListObservations(cmd.Context(), limit)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.observations(obs)
			p.faint.Fprintf(cmd.OutOrStdout(), "%d of %d observations\n", len(obs), total)
			return nil
		},
	}
	list.Flags().IntVar(&limit, "limit", 20, "maximum number of observations (0 for all)")
	command.AddCommand(list)
	return command
}
