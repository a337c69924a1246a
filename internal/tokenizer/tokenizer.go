// Package tokenizer splits raw document text into candidate tokens for the
// index. Token boundaries are a configurable delimiter set; the index itself
// never re-splits input. Optional Snowball stemming can be enabled so that
// inflected forms of a word collapse to one term — it is applied to document
// tokens and queries alike, keeping the two paths symmetric.
package tokenizer

import (
	"strings"

	"github.com/kljensen/snowball"
)

// DefaultDelimiters is the boundary set used when the configuration does not
// override it: whitespace plus common punctuation and brackets.
const DefaultDelimiters = " ,.?!\"\n\t\r[](){}"

type Tokenizer struct {
	delimiters string
	stemming   bool
}

func New(delimiters string, stemming bool) *Tokenizer {
	if delimiters == "" {
		delimiters = DefaultDelimiters
	}
	return &Tokenizer{delimiters: delimiters, stemming: stemming}
}

// Split breaks a line into tokens on the delimiter set. It never yields
// empty tokens; runs of adjacent delimiters collapse.
func (t *Tokenizer) Split(line string) []string {
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(t.delimiters, r)
	})
	if !t.stemming {
		return tokens
	}
	stemmed := make([]string, len(tokens))
	for i, tok := range tokens {
		stemmed[i] = t.stem(tok)
	}
	return stemmed
}

// NormalizeQuery prepares a user query the same way document tokens are
// prepared, so a lookup always matches what was indexed.
func (t *Tokenizer) NormalizeQuery(query string) string {
	query = strings.TrimSpace(query)
	if !t.stemming {
		return query
	}
	return t.stem(query)
}

// stem lower-cases the word and applies the English Snowball stemmer,
// falling back to the raw word when the stemmer cannot handle it.
func (t *Tokenizer) stem(word string) string {
	stemmed, err := snowball.Stem(strings.ToLower(word), "english", true)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}
