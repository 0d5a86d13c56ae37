package markov

import (
	"context"
	"log/slog"
)

// GenerateStream runs the same procedure as Generate but delivers the text one
// character at a time on the returned channel, starting with the characters of
// initialText. The channel is closed when generation finishes or ctx is
// cancelled. The model's random source is used by the streaming goroutine
// until the channel is closed.
func (m *LanguageModel) GenerateStream(ctx context.Context, initialText string, targetLength int) <-chan rune {
	out := make(chan rune)

	go func() {
		defer close(out)

		text := []rune(initialText)
		for _, c := range text {
			select {
			case out <- c:
			case <-ctx.Done():
				return
			}
		}

		if m.windowLength > len(text) || len(text) >= targetLength {
			return
		}

		for len(text) < targetLength {
			c, ok := m.next(text)
			if !ok {
				m.logger.DebugContext(ctx, "Stream terminated due to unknown window",
					slog.Int("generated_length", len(text)),
					slog.Int("target_length", targetLength),
				)
				return
			}
			text = append(text, c)

			select {
			case out <- c:
			case <-ctx.Done():
				m.logger.DebugContext(ctx, "Stream cancelled",
					slog.Int("generated_length", len(text)),
				)
				return
			}
		}
	}()

	return out
}
