package tokenizer

import (
	"reflect"
	"testing"
)

func TestSplitOnDefaultDelimiters(t *testing.T) {
	tok := New("", false)

	got := tok.Split(`Hello, world! (again) [and "again"]`)
	want := []string{"Hello", "world", "again", "and", "again"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}

func TestSplitNeverYieldsEmptyTokens(t *testing.T) {
	tok := New("", false)
	for _, line := range []string{"", "   ", ",,,..!!", "a,,b"} {
		for _, token := range tok.Split(line) {
			if token == "" {
				t.Errorf("Split(%q) yielded an empty token", line)
			}
		}
	}
}

func TestSplitCustomDelimiters(t *testing.T) {
	tok := New(";|", false)

	got := tok.Split("one;two|three four")
	want := []string{"one", "two", "three four"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}

// TestStemmingSymmetry: with stemming enabled, document tokens and queries
// must collapse to the same term or lookups would miss what was indexed.
func TestStemmingSymmetry(t *testing.T) {
	tok := New("", true)

	tokens := tok.Split("jumping jumps jumped")
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}
	for _, token := range tokens {
		if token != "jump" {
			t.Errorf("stemmed token = %q, want jump", token)
		}
	}
	if q := tok.NormalizeQuery("Jumping"); q != "jump" {
		t.Errorf("NormalizeQuery = %q, want jump", q)
	}
}

func TestNormalizeQueryWithoutStemming(t *testing.T) {
	tok := New("", false)
	if q := tok.NormalizeQuery("  Apple  "); q != "Apple" {
		t.Errorf("NormalizeQuery = %q, want Apple (trimmed, unstemmed)", q)
	}
}
