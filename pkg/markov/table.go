package markov

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// CharCount is a single entry of a FrequencyTable: a character, the number of
// times it followed the table's window, and the probabilities derived from
// that count once training has finished.
type CharCount struct {
	Char  rune
	Count int
	P     float64 // probability of Char following the window
	CP    float64 // cumulative probability up to and including this entry
}

// String renders the entry as "(c count p cp)".
func (c CharCount) String() string {
	var b strings.Builder
	c.appendTo(&b)
	return b.String()
}

func (c CharCount) appendTo(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(strconv.QuoteRune(c.Char))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(c.Count))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(c.P, 'f', 4, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(c.CP, 'f', 4, 64))
	b.WriteByte(')')
}

// FrequencyTable holds the characters observed after one window, in the order
// they were first seen. Each character has at most one entry.
type FrequencyTable struct {
	entries []CharCount
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{}
}

// Update records one more occurrence of c, appending a new entry if c has not
// been seen before.
func (t *FrequencyTable) Update(c rune) {
	for i := range t.entries {
		if t.entries[i].Char == c {
			t.entries[i].Count++
			return
		}
	}
	t.entries = append(t.entries, CharCount{Char: c, Count: 1})
}

// CalculateProbabilities sets P and CP on every entry from the current counts.
// CP accumulates in insertion order, which is the same order SampleChar scans.
func (t *FrequencyTable) CalculateProbabilities() {
	total := t.Total()
	if total == 0 {
		return
	}
	var cp float64
	for i := range t.entries {
		p := float64(t.entries[i].Count) / float64(total)
		cp += p
		t.entries[i].P = p
		t.entries[i].CP = cp
	}
	// Rounding can leave the running sum a hair under 1.
	t.entries[len(t.entries)-1].CP = 1.0
}

// SampleChar maps a uniform draw r in [0, 1) to a character by returning the
// first entry whose cumulative probability reaches r.
func (t *FrequencyTable) SampleChar(r float64) rune {
	if len(t.entries) == 0 {
		return utf8.RuneError
	}
	for _, e := range t.entries {
		if e.CP >= r {
			return e.Char
		}
	}
	return t.entries[len(t.entries)-1].Char
}

// Entries returns a copy of the table's entries in insertion order.
func (t *FrequencyTable) Entries() []CharCount {
	out := make([]CharCount, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of distinct characters in the table.
func (t *FrequencyTable) Len() int {
	return len(t.entries)
}

// Total returns the sum of all counts.
func (t *FrequencyTable) Total() int {
	var total int
	for _, e := range t.entries {
		total += e.Count
	}
	return total
}

func (t *FrequencyTable) String() string {
	var b strings.Builder
	for i, e := range t.entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		e.appendTo(&b)
	}
	return b.String()
}
