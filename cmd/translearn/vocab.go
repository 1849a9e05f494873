package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/japaniel/translearn/pkg/db"
)

func newVocabCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "vocab",
		Short: "Browse and maintain learned vocabulary",
	}
	command.AddCommand(newVocabListCommand(), newVocabDeleteCommand())
	return command
}

func newVocabListCommand() *cobra.Command {
	var limit int
	order := sortOrder(db.OrderByFrequency)
	command := &cobra.Command{
		Use:   "list",
		Short: "List learned words, most frequent first",
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

			entries, err := store.ListVocabulary(cmd.Context(), db.VocabularyQuery{
				Order: db.VocabularyOrder(order),
				Limit: limit,
			})
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).vocabulary(entries)
			return nil
		},
	}
	command.Flags().IntVar(&limit, "limit", defaultVocabularyLimit, "maximum number of entries (0 for all)")
	command.Flags().Var(&order, "sort", fmt.Sprintf("sort order. Possible values are %v", allSortOrders))
	return command
}

func newVocabDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PHRASE",
		Short: "Forget a learned word",
		Args:  cobra.ExactArgs(1),
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

			ok, err := store.DeleteVocabulary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%q is not in the vocabulary", args[0])
			}
			newPrinter(cmd.OutOrStdout()).green.Fprintf(cmd.OutOrStdout(), "Deleted %q.\n", args[0])
			return nil
		},
	}
}
