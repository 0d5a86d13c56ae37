package markov

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"testing"
)

func TestTrain(t *testing.T) {
	m := newTrainedModel(t, 1, "aabaa")

	if !m.Trained() {
		t.Fatal("expected model to be trained")
	}
	if got := m.Windows(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected windows [a b], got %v", got)
	}

	a, ok := m.Distribution("a")
	if !ok {
		t.Fatal("expected window \"a\" to be present")
	}
	if len(a) != 2 || a[0].Char != 'a' || a[0].Count != 2 || a[1].Char != 'b' || a[1].Count != 1 {
		t.Errorf("unexpected distribution for \"a\": %v", a)
	}
	if math.Abs(a[0].P-2.0/3.0) > 1e-9 || math.Abs(a[1].P-1.0/3.0) > 1e-9 {
		t.Errorf("unexpected probabilities for \"a\": %v", a)
	}

	b, ok := m.Distribution("b")
	if !ok {
		t.Fatal("expected window \"b\" to be present")
	}
	if len(b) != 1 || b[0].Char != 'a' || b[0].Count != 1 || b[0].P != 1.0 || b[0].CP != 1.0 {
		t.Errorf("unexpected distribution for \"b\": %v", b)
	}
}

func TestTrainInsufficientInput(t *testing.T) {
	testCases := []struct {
		name         string
		windowLength int
		corpus       string
		got          int
	}{
		{name: "Empty corpus", windowLength: 2, corpus: "", got: 0},
		{name: "One character short", windowLength: 2, corpus: "a", got: 1},
		{name: "Multi-byte characters count once", windowLength: 4, corpus: "héé", got: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewLanguageModel(tc.windowLength)
			if err != nil {
				t.Fatalf("NewLanguageModel() error = %v", err)
			}
			err = m.Train(context.Background(), strings.NewReader(tc.corpus))

			var insufficient *InsufficientInputError
			if !errors.As(err, &insufficient) {
				t.Fatalf("expected InsufficientInputError, got %v", err)
			}
			if insufficient.WindowLength != tc.windowLength || insufficient.Got != tc.got {
				t.Errorf("unexpected error fields: %+v", insufficient)
			}
			if m.Trained() || len(m.Windows()) != 0 {
				t.Error("expected no model after failed training")
			}
		})
	}
}

func TestTrainExactlyOneWindow(t *testing.T) {
	m := newTrainedModel(t, 3, "abc")
	if !m.Trained() {
		t.Error("expected a corpus of exactly one window to train")
	}
	if n := len(m.Windows()); n != 0 {
		t.Errorf("expected no windows, got %d", n)
	}
	if got := m.Generate("abc", 10); got != "abc" {
		t.Errorf("expected generation to stop immediately, got %q", got)
	}
}

func TestTrainTwice(t *testing.T) {
	m := newTrainedModel(t, 1, "aabaa")
	err := m.Train(context.Background(), strings.NewReader("xyz"))
	if !errors.Is(err, ErrAlreadyTrained) {
		t.Errorf("expected ErrAlreadyTrained, got %v", err)
	}
	if _, ok := m.Distribution("x"); ok {
		t.Error("second Train call must not change the model")
	}
}

// failingReader yields the runes of s and then a non-EOF error.
type failingReader struct {
	r   *strings.Reader
	err error
}

func (f *failingReader) ReadRune() (rune, int, error) {
	c, size, err := f.r.ReadRune()
	if errors.Is(err, io.EOF) {
		return 0, 0, f.err
	}
	return c, size, err
}

func TestTrainReadError(t *testing.T) {
	readErr := errors.New("disk on fire")

	for _, corpus := range []string{"a", "abcdef"} {
		t.Run(fmt.Sprintf("Fail after %q", corpus), func(t *testing.T) {
			m, _ := NewLanguageModel(2)
			err := m.Train(context.Background(), &failingReader{r: strings.NewReader(corpus), err: readErr})
			if !errors.Is(err, readErr) {
				t.Fatalf("expected wrapped read error, got %v", err)
			}
			if m.Trained() {
				t.Error("model should not be trained after a read error")
			}

			// A failed attempt leaves the model free to train again.
			if err := m.Train(context.Background(), strings.NewReader("abab")); err != nil {
				t.Errorf("Train() after failure error = %v", err)
			}
		})
	}
}

func TestTrainCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, _ := NewLanguageModel(2)
	err := m.Train(ctx, strings.NewReader(testCorpus))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if m.Trained() {
		t.Error("model should not be trained after cancellation")
	}
}

func TestTrainProbabilityInvariants(t *testing.T) {
	const tolerance = 1e-9

	for _, windowLength := range []int{1, 2, 3, 5} {
		t.Run(fmt.Sprintf("Window%d", windowLength), func(t *testing.T) {
			m := newTrainedModel(t, windowLength, testCorpus)

			for _, w := range m.Windows() {
				if n := len([]rune(w)); n != windowLength {
					t.Errorf("window %q has %d characters, want %d", w, n, windowLength)
				}

				entries, _ := m.Distribution(w)
				if len(entries) == 0 {
					t.Errorf("window %q has no entries", w)
					continue
				}

				seen := make(map[rune]bool)
				var sum, prevCP float64
				for _, e := range entries {
					if seen[e.Char] {
						t.Errorf("window %q has duplicate entry for %q", w, e.Char)
					}
					seen[e.Char] = true
					sum += e.P
					if e.CP < prevCP {
						t.Errorf("window %q: cp decreased from %v to %v", w, prevCP, e.CP)
					}
					prevCP = e.CP
				}
				if math.Abs(sum-1.0) > tolerance {
					t.Errorf("window %q: probabilities sum to %v", w, sum)
				}
				if math.Abs(entries[len(entries)-1].CP-1.0) > tolerance {
					t.Errorf("window %q: last cp is %v", w, entries[len(entries)-1].CP)
				}
			}
		})
	}
}

func TestTrainMultiByte(t *testing.T) {
	m := newTrainedModel(t, 1, "héllo wörld")

	entries, ok := m.Distribution("é")
	if !ok {
		t.Fatal("expected a window for 'é'")
	}
	if len(entries) != 1 || entries[0].Char != 'l' {
		t.Errorf("unexpected distribution after 'é': %v", entries)
	}
}

func BenchmarkTrain(b *testing.B) {
	corpus := createBenchmarkCorpus()
	ctx := context.Background()

	for _, windowLength := range []int{1, 2, 3, 4, 5} {
		b.Run(fmt.Sprintf("Window%d", windowLength), func(b *testing.B) {
			b.SetBytes(int64(len(corpus)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m, _ := NewLanguageModel(windowLength)
				if err := m.Train(ctx, strings.NewReader(corpus)); err != nil {
					b.Fatalf("Train() failed: %v", err)
				}
			}
		})
	}
}
