package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		tf      trainFlags
		initial string
		length  int
		outPath string
		stream  bool
	)

	cmd := &cobra.Command{
		Use:   "generate [corpus files...]",
		Short: "Train on a corpus and generate text",
		Long: `Train a model on the given files (or stdin, or the corpus database with
--from-db) and extend the initial text one sampled character at a time until
it reaches the target length or the model has never seen the trailing window.`,
		Example: `
  # Reproducible text from a single file
  charkov generate --window 4 --seed 7 --initial "Once" --length 300 alice.txt

  # Train on everything ingested into the corpus database
  charkov generate --from-db --initial "The " --out story.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stream && outPath != "" {
				return errors.New("--stream cannot be combined with --out")
			}

			m, err := a.trainModel(cmd, &tf, args)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("initial") {
				a.config.Model.InitialText = initial
			}
			if cmd.Flags().Changed("length") {
				a.config.Model.TargetLength = length
			}
			initialText, targetLength := a.config.Model.InitialText, a.config.Model.TargetLength

			if n := utf8.RuneCountInString(initialText); n < m.WindowLength() {
				a.logger.Warn("Initial text is shorter than the window, nothing will be generated",
					slog.Int("initial_length", n),
					slog.Int("window_length", m.WindowLength()),
				)
			}

			if stream {
				w := bufio.NewWriter(cmd.OutOrStdout())
				for c := range m.GenerateStream(cmd.Context(), initialText, targetLength) {
					_, _ = w.WriteRune(c)
					if err = w.Flush(); err != nil {
						return err
					}
				}
				_ = w.WriteByte('\n')
				return w.Flush()
			}

			text := m.Generate(initialText, targetLength)
			if outPath == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			}

			if err = atomic.WriteFile(outPath, strings.NewReader(text)); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			a.logger.Info("Generated text written",
				slog.String("path", outPath),
				slog.Int("length", utf8.RuneCountInString(text)),
			)
			return nil
		},
	}

	tf.register(cmd)
	cmd.Flags().StringVarP(&initial, "initial", "i", "", "Text to start from; must be at least one window long (overrides config)")
	cmd.Flags().IntVarP(&length, "length", "n", 0, "Total length of the output in characters, including the initial text (overrides config)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the generated text to this file instead of stdout")
	cmd.Flags().BoolVar(&stream, "stream", false, "Print characters as they are sampled")

	return cmd
}
