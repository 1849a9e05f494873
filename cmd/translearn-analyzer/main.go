// Command translearn-analyzer reads text on stdin and writes the vocabulary
// found in it to stdout as a JSON array of
// {WordOrPhrase, Frequency, Difficulty, ContextSentence} objects.
// Errors go to stderr.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/japaniel/translearn/pkg/analyzer"
	"github.com/japaniel/translearn/pkg/dictionary"
	"github.com/japaniel/translearn/pkg/lexicon"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("translearn-analyzer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dictFlag := fs.String("dict", "", "Path to JMdict-Simplified JSON file used for difficulty scores")
	download := fs.Bool("download", false, "Download the common JMdict file to -dict if it is missing")
	verbose := fs.Bool("verbose", false, "Report dictionary loading on stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var dict *dictionary.Index
	if *dictFlag != "" {
		if *download {
			if err := dictionary.EnsureDictionary(ctx, *dictFlag); err != nil {
				fmt.Fprintf(stderr, "Failed to ensure dictionary at %s: %v\n", *dictFlag, err)
				return 1
			}
		}
		start := time.Now()
		ix, err := dictionary.Load(*dictFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load dictionary: %v\n", err)
			return 1
		}
		dict = ix
		// Anything on stderr is logged as a warning by the caller.
		if *verbose {
			fmt.Fprintf(stderr, "Dictionary loaded (%d terms) in %v\n", ix.Len(), time.Since(start))
		}
	}

	text, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read input: %v\n", err)
		return 1
	}

	extractor, err := lexicon.NewExtractor(dict)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create analyzer: %v\n", err)
		return 1
	}

	entries := extractor.Extract(string(text))
	if entries == nil {
		entries = []analyzer.Entry{}
	}
	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		fmt.Fprintf(stderr, "Failed to write output: %v\n", err)
		return 1
	}
	return 0
}
