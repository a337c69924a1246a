package index

// Occurrence records one term's presence in a single document, with the
// number of times the term appeared there.
type Occurrence struct {
	DocID     int
	DocName   string
	Frequency int
}

type OccurrenceList []Occurrence

// TermEntry pairs a term with all of its occurrences. Returned by Snapshot.
type TermEntry struct {
	Term        string
	Occurrences OccurrenceList
}

// Stats summarizes the shape of a Table for diagnostics and metrics.
type Stats struct {
	Capacity     int
	Terms        int
	UsedBuckets  int
	LongestChain int
}
