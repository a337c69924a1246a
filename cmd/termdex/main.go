package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/termdex/termdex/internal/index"
	"github.com/termdex/termdex/internal/loader"
	"github.com/termdex/termdex/internal/repl"
	"github.com/termdex/termdex/internal/tokenizer"
	"github.com/termdex/termdex/pkg/config"
	"github.com/termdex/termdex/pkg/logger"
	"github.com/termdex/termdex/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "configs/default.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	// Positional arguments replace the configured document list.
	if args := flag.Args(); len(args) > 0 {
		cfg.Documents = args
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting termdex",
		"documents", len(cfg.Documents),
		"capacity", cfg.Index.Capacity,
		"stemming", cfg.Tokenizer.Stemming,
	)

	m := metrics.New()
	table := index.New(cfg.Index.Capacity)
	tok := tokenizer.New(cfg.Tokenizer.Delimiters, cfg.Tokenizer.Stemming)

	result := loader.New(table, tok, m).LoadAll(cfg.Documents)
	stats := table.Stats()
	m.IndexedTerms.Set(float64(stats.Terms))
	for _, n := range table.ChainLengths() {
		m.BucketChainLength.Observe(float64(n))
	}
	slog.Info("index built",
		"docs_indexed", result.DocsIndexed,
		"docs_skipped", result.DocsSkipped,
		"tokens", result.TokensIndexed,
		"tokens_dropped", result.TokensDropped,
		"terms", stats.Terms,
		"longest_chain", stats.LongestChain,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	replCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	if cfg.Metrics.Enabled {
		shutdown := metrics.StartServer(cfg.Metrics.Port)
		g.Go(func() error {
			<-replCtx.Done()
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancelShutdown()
			return shutdown(shutdownCtx)
		})
	}
	g.Go(func() error {
		defer cancel()
		return repl.New(table, tok, m, os.Stdin, os.Stdout).Run(replCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("termdex exited with error", "error", err)
		os.Exit(1)
	}
	slog.Info("termdex stopped")
}
