package markov

// ModelStats holds aggregated statistics for a trained model.
type ModelStats struct {
	WindowLength  int // The number of characters in each window
	Windows       int // The number of distinct windows seen in training
	Transitions   int // The sum of all counts; the number of trained window->character steps
	DistinctChars int // The number of distinct characters that follow some window
}

// Stats returns a snapshot of statistics for the model. An untrained model
// reports zero windows and transitions.
func (m *LanguageModel) Stats() ModelStats {
	chars := make(map[rune]struct{})
	var transitions int
	for _, table := range m.tables {
		for _, e := range table.entries {
			chars[e.Char] = struct{}{}
			transitions += e.Count
		}
	}
	return ModelStats{
		WindowLength:  m.windowLength,
		Windows:       len(m.tables),
		Transitions:   transitions,
		DistinctChars: len(chars),
	}
}
