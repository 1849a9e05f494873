package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/japaniel/translearn/pkg/article"
	"github.com/japaniel/translearn/pkg/learning"
)

func newLearnCommand() *cobra.Command {
	var urlFlag string
	command := &cobra.Command{
		Use:   "learn [text...]",
		Short: "Learn vocabulary from text, standard input or a web article",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			p := newPrinter(cmd.OutOrStdout())

			var text string
			switch {
			case urlFlag != "":
				fmt.Fprintf(cmd.OutOrStdout(), "Fetching %s...\n", urlFlag)
				a, err := article.NewFetcher().Fetch(ctx, urlFlag)
				if err != nil {
					return fmt.Errorf("fetch article: %w", err)
				}
				p.bold.Fprintf(cmd.OutOrStdout(), "Title: %s\n", a.Title)
				fmt.Fprintf(cmd.OutOrStdout(), "Extracted Text Length: %d chars\n", len(a.Text))
				text = a.Text
			case len(args) > 0:
				text = strings.Join(args, " ")
			default:
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("nothing to learn: provide text, stdin or --url")
			}

			conn, store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			orch := learning.NewOrchestrator(newBridge(ctx, cfg), store)
			n, err := orch.AnalyzeAndLearn(ctx, text)
			if n > 0 {
				p.green.Fprintf(cmd.OutOrStdout(), "Learned %d words.\n", n)
			}
			return err
		},
	}
	command.Flags().StringVar(&urlFlag, "url", "", "URL of an article to learn from")
	return command
}
