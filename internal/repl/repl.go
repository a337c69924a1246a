// Package repl implements the interactive query prompt. It owns all result
// presentation: the index hands back occurrences in insertion order and the
// prompt applies the display ordering before printing.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/termdex/termdex/internal/index"
	"github.com/termdex/termdex/internal/tokenizer"
	"github.com/termdex/termdex/pkg/metrics"
)

const prompt = "search> "

type REPL struct {
	table  *index.Table
	tok    *tokenizer.Tokenizer
	m      *metrics.Metrics
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

func New(table *index.Table, tok *tokenizer.Tokenizer, m *metrics.Metrics, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		table:  table,
		tok:    tok,
		m:      m,
		in:     in,
		out:    out,
		logger: slog.Default().With("component", "repl"),
	}
}

// Run reads one query per line until EOF, "quit", or context cancellation.
// Blank lines are ignored and ":stats" prints table statistics; anything
// else is a single-term lookup.
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "":
			continue
		case "quit":
			return nil
		case ":stats":
			r.printStats()
			continue
		}
		r.query(input)
	}
}

// query runs a single-term lookup and prints the result table. A term with
// no occurrences prints a not-found line; it is not an error.
func (r *REPL) query(raw string) {
	start := time.Now()
	results := r.table.Lookup(r.tok.NormalizeQuery(raw))
	r.m.LookupLatency.Observe(time.Since(start).Seconds())

	if len(results) == 0 {
		r.m.LookupsTotal.WithLabelValues("miss").Inc()
		fmt.Fprintf(r.out, "no documents contain %q\n", raw)
		return
	}
	r.m.LookupsTotal.WithLabelValues("hit").Inc()
	r.logger.Debug("lookup hit", "query", raw, "docs", len(results))

	sortForDisplay(results)
	fmt.Fprintf(r.out, "results for %q:\n", raw)
	fmt.Fprintf(r.out, "%-25s | %s\n", "document", "occurrences")
	fmt.Fprintln(r.out, strings.Repeat("-", 40))
	for _, occ := range results {
		fmt.Fprintf(r.out, "%-25s | %d\n", occ.DocName, occ.Frequency)
	}
}

func (r *REPL) printStats() {
	stats := r.table.Stats()
	fmt.Fprintf(r.out, "terms:         %d\n", stats.Terms)
	fmt.Fprintf(r.out, "buckets:       %d/%d used\n", stats.UsedBuckets, stats.Capacity)
	fmt.Fprintf(r.out, "longest chain: %d\n", stats.LongestChain)
}

// sortForDisplay orders results by frequency descending, ties broken by doc
// ID ascending. The stable sort keeps this deterministic for equal keys.
func sortForDisplay(results index.OccurrenceList) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Frequency != results[j].Frequency {
			return results[i].Frequency > results[j].Frequency
		}
		return results[i].DocID < results[j].DocID
	})
}
