package markov

import (
	"log/slog"
)

// Generate extends initialText one sampled character at a time until the text
// is targetLength characters long, and returns it. Lengths count runes.
//
// initialText is returned unchanged when it is shorter than one window or is
// already at least targetLength long. If the trailing window of the text is
// not known to the model, generation stops and the text built so far is
// returned; on an untrained model this happens before the first step.
func (m *LanguageModel) Generate(initialText string, targetLength int) string {
	text := []rune(initialText)
	if m.windowLength > len(text) || len(text) >= targetLength {
		return initialText
	}

	for len(text) < targetLength {
		c, ok := m.next(text)
		if !ok {
			m.logger.Debug("Generation terminated due to unknown window",
				slog.String("window", string(text[len(text)-m.windowLength:])),
				slog.Int("generated_length", len(text)),
				slog.Int("target_length", targetLength),
			)
			break
		}
		text = append(text, c)
	}

	return string(text)
}

// next samples the character following the trailing window of text. It
// reports false if that window was never seen during training.
func (m *LanguageModel) next(text []rune) (rune, bool) {
	table, ok := m.tables[string(text[len(text)-m.windowLength:])]
	if !ok {
		return 0, false
	}
	return table.SampleChar(m.rng.Float64()), true
}
