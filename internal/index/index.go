// Package index implements the in-memory inverted index at the heart of
// termdex: a fixed-capacity hash table mapping case-folded terms to
// per-document occurrence counts.
//
// Collisions are resolved by chaining: each bucket holds a slice of distinct
// terms, scanned linearly for an exact match. Lookup cost is therefore
// O(chain length) in the worst case, and the bucket count never grows, so a
// corpus with far more distinct terms than buckets degrades toward linear
// scans. Size the capacity well above the expected vocabulary.
//
// A Table is not safe for concurrent use. Record and Lookup run to
// completion on a single goroutine; the typical workflow builds the whole
// index first and treats it as read-only afterwards.
package index

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/termdex/termdex/pkg/errors"
)

const (
	// DefaultCapacity is the bucket count used when the configuration does
	// not override it.
	DefaultCapacity = 1007

	// MaxTermLen is the longest normalized term Record accepts.
	MaxTermLen = 49

	// MaxDocNameLen is the longest document display name Record accepts.
	MaxDocNameLen = 49

	// hashSeed is the multiplier of the BKDR polynomial string hash.
	hashSeed = 131
)

// termEntry holds one distinct term and its occurrences, both append-ordered.
type termEntry struct {
	term        string
	occurrences []*Occurrence
}

// Table is the inverted index. It exclusively owns every term and occurrence
// it holds; Lookup and Snapshot hand out copies.
type Table struct {
	buckets [][]*termEntry
	terms   int
}

// New creates an empty Table with the given bucket count. Non-positive
// capacities fall back to DefaultCapacity.
func New(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table{buckets: make([][]*termEntry, capacity)}
}

// Normalize case-folds a raw token into its term form. It is idempotent:
// normalizing an already-normalized term returns it unchanged. Both Record
// and Lookup apply it, so callers never need to pre-fold input.
func Normalize(token string) string {
	return strings.Map(unicode.ToLower, token)
}

// hash maps a normalized term to its bucket with the BKDR polynomial hash.
// Deterministic and pure; stable within a run.
func (t *Table) hash(term string) int {
	var h uint32
	for i := 0; i < len(term); i++ {
		h = h*hashSeed + uint32(term[i])
	}
	return int(h % uint32(len(t.buckets)))
}

// findEntry scans the term's bucket chain for an exact match and returns nil
// when the term was never recorded.
func (t *Table) findEntry(term string) *termEntry {
	for _, e := range t.buckets[t.hash(term)] {
		if e.term == term {
			return e
		}
	}
	return nil
}

// findOrCreateEntry returns the existing entry for term, or appends a new
// empty one to the bucket chain. Append keeps chain order deterministic for
// a given insertion sequence.
func (t *Table) findOrCreateEntry(term string) *termEntry {
	idx := t.hash(term)
	for _, e := range t.buckets[idx] {
		if e.term == term {
			return e
		}
	}
	e := &termEntry{term: term}
	t.buckets[idx] = append(t.buckets[idx], e)
	t.terms++
	return e
}

// Record indexes one occurrence of token in the document identified by
// docID. The token is normalized first; tokens that are empty after
// normalization are silently dropped. The first Record for a
// (term, docID) pair creates an Occurrence with frequency 1 and stores
// docName; every subsequent Record for the same pair only increments the
// frequency, so the first-seen name wins and no two occurrences of a term
// ever share a docID.
//
// Rejections (over-long token, over-long name, non-positive docID) leave the
// table untouched and return a typed error; callers are expected to drop the
// token and keep indexing rather than abort the run.
func (t *Table) Record(token string, docID int, docName string) error {
	term := Normalize(token)
	if term == "" {
		return nil
	}
	if len(term) > MaxTermLen {
		return &errors.TokenError{Token: term, Err: errors.ErrTokenTooLong}
	}
	if docID < 1 {
		return fmt.Errorf("doc id %d: %w", docID, errors.ErrInvalidDocID)
	}
	if len(docName) > MaxDocNameLen {
		return fmt.Errorf("doc name %q: %w", docName, errors.ErrNameTooLong)
	}

	entry := t.findOrCreateEntry(term)
	for _, occ := range entry.occurrences {
		if occ.DocID == docID {
			occ.Frequency++
			return nil
		}
	}
	entry.occurrences = append(entry.occurrences, &Occurrence{
		DocID:     docID,
		DocName:   docName,
		Frequency: 1,
	})
	return nil
}

// Lookup returns copies of every occurrence of the query term, in insertion
// order, or nil when the term was never recorded. A miss is not an error.
// Only exact normalized-string equality matches; there is no prefix or fuzzy
// matching. Ordering the results is the caller's concern.
func (t *Table) Lookup(query string) OccurrenceList {
	term := Normalize(query)
	if term == "" {
		return nil
	}
	entry := t.findEntry(term)
	if entry == nil || len(entry.occurrences) == 0 {
		return nil
	}
	result := make(OccurrenceList, 0, len(entry.occurrences))
	for _, occ := range entry.occurrences {
		result = append(result, *occ)
	}
	return result
}

// TermCount returns the number of distinct terms in the table.
func (t *Table) TermCount() int {
	return t.terms
}

// Capacity returns the fixed bucket count.
func (t *Table) Capacity() int {
	return len(t.buckets)
}

// ChainLengths returns the length of every non-empty bucket chain.
func (t *Table) ChainLengths() []int {
	lengths := make([]int, 0, t.terms)
	for _, chain := range t.buckets {
		if len(chain) > 0 {
			lengths = append(lengths, len(chain))
		}
	}
	return lengths
}

// Stats summarizes the table's bucket utilization.
func (t *Table) Stats() Stats {
	s := Stats{Capacity: len(t.buckets), Terms: t.terms}
	for _, chain := range t.buckets {
		if len(chain) == 0 {
			continue
		}
		s.UsedBuckets++
		if len(chain) > s.LongestChain {
			s.LongestChain = len(chain)
		}
	}
	return s
}

// Snapshot returns every term with its occurrences, sorted by term and by
// doc ID so the result is deterministic regardless of bucket layout.
func (t *Table) Snapshot() []TermEntry {
	entries := make([]TermEntry, 0, t.terms)
	for _, chain := range t.buckets {
		for _, e := range chain {
			occs := make(OccurrenceList, 0, len(e.occurrences))
			for _, occ := range e.occurrences {
				occs = append(occs, *occ)
			}
			sort.Slice(occs, func(i, j int) bool {
				return occs[i].DocID < occs[j].DocID
			})
			entries = append(entries, TermEntry{Term: e.term, Occurrences: occs})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Term < entries[j].Term
	})
	return entries
}
