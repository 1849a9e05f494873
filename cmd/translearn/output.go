package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/japaniel/translearn/pkg/db"
	"github.com/japaniel/translearn/pkg/events"
	"github.com/japaniel/translearn/pkg/ingest"
)

// sortOrder is the --sort flag of vocab list and the sort query parameter.
type sortOrder db.VocabularyOrder

func (s *sortOrder) Set(val string) error {
	for _, o := range allSortOrders {
		if val == string(o) {
			*s = sortOrder(o)
			return nil
		}
	}
	return fmt.Errorf("invalid sort order: %s", val)
}

func (s sortOrder) String() string {
	return string(s)
}

func (s *sortOrder) Type() string {
	return "order"
}

var (
	_             pflag.Value = (*sortOrder)(nil)
	allSortOrders             = []db.VocabularyOrder{db.OrderByFrequency, db.OrderByRecent}
)

type printer struct {
	out    io.Writer
	bold   *color.Color
	faint  *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

func newPrinter(out io.Writer) *printer {
	return &printer{
		out:    out,
		bold:   color.New(color.Bold),
		faint:  color.New(color.Faint),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
	}
}

func (p *printer) result(res ingest.Result) {
	switch {
	case res.Err != nil:
		p.red.Fprintf(p.out, "Failed: %v\n", res.Err)
	case !res.Found:
		p.yellow.Fprintln(p.out, "No text found.")
	default:
		p.bold.Fprintln(p.out, res.SourceText)
		p.green.Fprintln(p.out, res.TranslatedText)
		if res.Observation == nil {
			p.yellow.Fprintln(p.out, "(observation was not saved)")
		}
	}
}

func (p *printer) event(e events.Event) {
	stamp := p.faint.Sprintf("%s %-6s", e.At.Local().Format("15:04:05"), e.Modality)
	switch e.Kind {
	case events.KindTranslated:
		fmt.Fprintf(p.out, "%s %s\n", stamp, p.bold.Sprint(e.SourceText))
		fmt.Fprintf(p.out, "%s %s\n", strings.Repeat(" ", 15), p.green.Sprint(e.TranslatedText))
	case events.KindNoTextFound:
		fmt.Fprintf(p.out, "%s %s\n", stamp, p.yellow.Sprint("no text found"))
	}
}

func (p *printer) vocabulary(entries []db.VocabularyEntry) {
	if len(entries) == 0 {
		p.yellow.Fprintln(p.out, "No vocabulary learned yet.")
		return
	}
	for _, e := range entries {
		difficulty := "-"
		if e.Difficulty != nil {
			difficulty = fmt.Sprintf("%.1f", *e.Difficulty)
		}
		fmt.Fprintf(p.out, "%s  x%d  difficulty %s  %s\n",
			p.bold.Sprint(e.Phrase), e.Frequency, difficulty, p.faint.Sprint(e.LastSeen.Local().Format("2006-01-02 15:04")))
		if e.ContextSentence != nil {
			fmt.Fprintf(p.out, "    %s\n", *e.ContextSentence)
		}
	}
}

func (p *printer) observations(obs []db.Observation) {
	if len(obs) == 0 {
		p.yellow.Fprintln(p.out, "No observations recorded yet.")
		return
	}
	for _, o := range obs {
		fmt.Fprintf(p.out, "%s %s %-6s %s\n",
			p.faint.Sprintf("#%d", o.ID), o.Timestamp.Local().Format("2006-01-02 15:04:05"), o.Modality.Label(), p.bold.Sprint(o.SourceText))
		fmt.Fprintf(p.out, "    %s\n", p.green.Sprint(o.TranslatedText))
	}
}
