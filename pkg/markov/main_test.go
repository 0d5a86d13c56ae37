package markov

import (
	"context"
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// newTrainedModel builds a model with the given window length and trains it on
// corpus, failing the test on any error.
func newTrainedModel(t testing.TB, windowLength int, corpus string, opts ...Option) *LanguageModel {
	t.Helper()
	m, err := NewLanguageModel(windowLength, opts...)
	if err != nil {
		t.Fatalf("NewLanguageModel(%d) error = %v", windowLength, err)
	}
	if err := m.Train(context.Background(), strings.NewReader(corpus)); err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	return m
}

// scriptedSource replays fixed draws, then repeats the last one.
type scriptedSource struct {
	draws []float64
	i     int
}

func (s *scriptedSource) Float64() float64 {
	if s.i >= len(s.draws) {
		return s.draws[len(s.draws)-1]
	}
	d := s.draws[s.i]
	s.i++
	return d
}

const testCorpus = `one fish two fish red fish blue fish.
black fish blue fish old fish new fish.
this one has a little star. this one has a little car.
say! what a lot of fish there are.`

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = strings.Repeat(testCorpus+"\n", 200)
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
