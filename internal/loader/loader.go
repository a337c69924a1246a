// Package loader reads the configured documents and feeds their tokens to
// the index in document order. Doc IDs are assigned 1..N by position in the
// configured file list; the display name is the base filename.
package loader

import (
	"bufio"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/termdex/termdex/internal/index"
	"github.com/termdex/termdex/internal/tokenizer"
	"github.com/termdex/termdex/pkg/errors"
	"github.com/termdex/termdex/pkg/metrics"
)

// maxLineBytes caps the scanner's line buffer. Lines beyond this abort the
// document's read, not the run.
const maxLineBytes = 64 * 1024

type Loader struct {
	table  *index.Table
	tok    *tokenizer.Tokenizer
	m      *metrics.Metrics
	logger *slog.Logger
}

func New(table *index.Table, tok *tokenizer.Tokenizer, m *metrics.Metrics) *Loader {
	return &Loader{
		table:  table,
		tok:    tok,
		m:      m,
		logger: slog.Default().With("component", "loader"),
	}
}

// Result summarizes one indexing run.
type Result struct {
	DocsIndexed   int
	DocsSkipped   int
	TokensIndexed int
	TokensDropped int
}

// LoadAll indexes every file in paths in order. An unreadable file is
// skipped with a warning and the run continues; the index simply lacks that
// document's contributions.
func (l *Loader) LoadAll(paths []string) Result {
	var res Result
	for i, path := range paths {
		docID := i + 1
		indexed, dropped, err := l.loadFile(docID, path)
		if err != nil {
			l.logger.Warn("skipping unreadable document", "path", path, "error", err)
			l.m.DocsSkippedTotal.Inc()
			res.DocsSkipped++
			continue
		}
		res.DocsIndexed++
		res.TokensIndexed += indexed
		res.TokensDropped += dropped
		l.m.DocsIndexedTotal.Inc()
		l.logger.Info("document indexed",
			"doc_id", docID,
			"doc_name", filepath.Base(path),
			"tokens", indexed,
		)
	}
	return res
}

// loadFile reads one document line by line and records every token. Tokens
// the index rejects are dropped and counted; the document keeps indexing.
func (l *Loader) loadFile(docID int, path string) (indexed, dropped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	docName := l.docName(path)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for scanner.Scan() {
		for _, token := range l.tok.Split(scanner.Text()) {
			if err := l.table.Record(token, docID, docName); err != nil {
				dropped++
				l.m.TokensDroppedTotal.WithLabelValues(dropReason(err)).Inc()
				l.logger.Warn("token dropped", "doc_name", docName, "error", err)
				continue
			}
			indexed++
			l.m.TokensRecordedTotal.Inc()
		}
	}
	if err := scanner.Err(); err != nil {
		l.logger.Warn("document read interrupted, partial contents indexed",
			"doc_name", docName, "error", err)
	}
	return indexed, dropped, nil
}

// docName derives the display name for a document, truncating names the
// index would reject.
func (l *Loader) docName(path string) string {
	name := filepath.Base(path)
	if len(name) > index.MaxDocNameLen {
		l.logger.Warn("document name truncated",
			"doc_name", name, "max_len", index.MaxDocNameLen)
		return name[:index.MaxDocNameLen]
	}
	return name
}

func dropReason(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrTokenTooLong):
		return "token_too_long"
	case stderrors.Is(err, errors.ErrNameTooLong):
		return "name_too_long"
	case stderrors.Is(err, errors.ErrInvalidDocID):
		return "invalid_doc_id"
	default:
		return "rejected"
	}
}
