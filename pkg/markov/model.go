package markov

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrInvalidWindowLength is returned by NewLanguageModel when the window
	// length is not positive.
	ErrInvalidWindowLength = errors.New("markov: window length must be positive")
	// ErrAlreadyTrained is returned by Train when the model has already been
	// trained. Models are built once and never merged.
	ErrAlreadyTrained = errors.New("markov: model is already trained")
)

// InsufficientInputError reports a corpus that ended before a full window
// could be read. No model is produced when it is returned.
type InsufficientInputError struct {
	WindowLength int
	Got          int
}

func (e *InsufficientInputError) Error() string {
	return "markov: corpus has " + strconv.Itoa(e.Got) +
		" characters, need at least " + strconv.Itoa(e.WindowLength)
}

// RandSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Option configures a LanguageModel.
type Option func(*LanguageModel)

// WithSeed makes generation reproducible: two models built with the same seed
// and trained on the same corpus generate the same text.
func WithSeed(seed uint64) Option {
	return func(m *LanguageModel) {
		m.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRandSource replaces the model's random source. The model takes
// ownership of src; it must not be shared with other users.
func WithRandSource(src RandSource) Option {
	return func(m *LanguageModel) {
		if src != nil {
			m.rng = src
		}
	}
}

// LanguageModel maps every window of windowLength characters seen in the
// training corpus to the frequency table of the characters that followed it.
//
// A model is trained once and is read-only afterwards. Generation draws from
// the model's own random source, so a LanguageModel must not generate from
// several goroutines at the same time.
type LanguageModel struct {
	windowLength int
	tables       map[string]*FrequencyTable
	rng          RandSource
	trained      bool
	logger       *slog.Logger
}

// NewLanguageModel creates an untrained model with the given window length.
// Without WithSeed or WithRandSource the random source is seeded from the
// runtime and generation is not reproducible.
func NewLanguageModel(windowLength int, opts ...Option) (*LanguageModel, error) {
	if windowLength <= 0 {
		return nil, ErrInvalidWindowLength
	}

	m := &LanguageModel{
		windowLength: windowLength,
		tables:       make(map[string]*FrequencyTable),
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// SetLogger sets the logger for the model. By default, all logs are discarded.
func (m *LanguageModel) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// WindowLength returns the number of characters in each window.
func (m *LanguageModel) WindowLength() int {
	return m.windowLength
}

// Trained reports whether Train has completed successfully.
func (m *LanguageModel) Trained() bool {
	return m.trained
}

// Windows returns every window known to the model, sorted.
func (m *LanguageModel) Windows() []string {
	windows := make([]string, 0, len(m.tables))
	for w := range m.tables {
		windows = append(windows, w)
	}
	sort.Strings(windows)
	return windows
}

// Distribution returns a copy of the entries recorded for window, and whether
// the window is known.
func (m *LanguageModel) Distribution(window string) ([]CharCount, bool) {
	table, ok := m.tables[window]
	if !ok {
		return nil, false
	}
	return table.Entries(), true
}

// String renders one line per window followed by its table. It is meant for
// debugging; windows are sorted only to keep the output readable.
func (m *LanguageModel) String() string {
	var b strings.Builder
	for _, w := range m.Windows() {
		b.WriteString(strconv.Quote(w))
		b.WriteString(" : ")
		b.WriteString(m.tables[w].String())
		b.WriteByte('\n')
	}
	return b.String()
}
