package markov

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Train reads the corpus from r until io.EOF and builds the model from it.
// The first WindowLength characters form the initial window; every character
// after that is counted against the window preceding it, and the window then
// slides forward by one. Probabilities are computed once the stream ends.
//
// If the corpus is shorter than one window, Train returns an
// *InsufficientInputError. On any error the model is left untrained.
func (m *LanguageModel) Train(ctx context.Context, r io.RuneReader) error {
	// ctxCheckInterval is how many characters are consumed between checks of ctx.
	const ctxCheckInterval = 4096

	if m.trained {
		return ErrAlreadyTrained
	}

	window := make([]rune, 0, m.windowLength)
	for len(window) < m.windowLength {
		c, _, err := r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return &InsufficientInputError{WindowLength: m.windowLength, Got: len(window)}
			}
			return fmt.Errorf("corpus read error: %w", err)
		}
		window = append(window, c)
	}

	tables := make(map[string]*FrequencyTable)
	var transitions int64

	for {
		if transitions%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		c, _, err := r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("corpus read error after %d characters: %w", transitions+int64(m.windowLength), err)
		}

		key := string(window)
		table, ok := tables[key]
		if !ok {
			table = NewFrequencyTable()
			tables[key] = table
		}
		table.Update(c)

		copy(window, window[1:])
		window[len(window)-1] = c
		transitions++
	}

	for _, table := range tables {
		table.CalculateProbabilities()
	}

	m.tables = tables
	m.trained = true

	m.logger.InfoContext(ctx, "Training completed",
		slog.Int("window_length", m.windowLength),
		slog.Int("windows", len(tables)),
		slog.Int64("transitions", transitions),
	)

	return nil
}
