package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/CTAG07/charkov/pkg/corpus"
	"github.com/CTAG07/charkov/pkg/markov"
	"github.com/spf13/cobra"
)

// trainFlags are the model flags shared by every command that trains a model.
type trainFlags struct {
	window int
	seed   uint64
	fromDB bool
}

func (f *trainFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.window, "window", "w", 0, "Window length in characters (overrides config)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed for reproducible output (overrides config)")
	cmd.Flags().BoolVar(&f.fromDB, "from-db", false, "Train on the documents in the corpus database instead of files")
}

// apply copies explicitly set flags over the loaded config.
func (f *trainFlags) apply(cmd *cobra.Command, config *Config) error {
	if cmd.Flags().Changed("window") {
		config.Model.WindowLength = f.window
	}
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		config.Model.Seed = &seed
	}
	return config.Validate()
}

// trainModel builds a model from the configured parameters and trains it on
// the corpus named by files, the corpus database, or stdin when neither is given.
func (a *app) trainModel(cmd *cobra.Command, f *trainFlags, files []string) (*markov.LanguageModel, error) {
	if err := f.apply(cmd, a.config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var opts []markov.Option
	if seed := a.config.Model.Seed; seed != nil {
		opts = append(opts, markov.WithSeed(*seed))
	}
	m, err := markov.NewLanguageModel(a.config.Model.WindowLength, opts...)
	if err != nil {
		return nil, err
	}
	m.SetLogger(a.logger)

	src, closeSrc, err := a.openCorpus(cmd, files, f.fromDB)
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	if err = m.Train(cmd.Context(), src); err != nil {
		return nil, fmt.Errorf("training failed: %w", err)
	}
	return m, nil
}

func (a *app) openCorpus(cmd *cobra.Command, files []string, fromDB bool) (io.RuneReader, func(), error) {
	switch {
	case fromDB && len(files) > 0:
		return nil, nil, errors.New("--from-db cannot be combined with corpus files")

	case fromDB:
		store, closeStore, err := openCorpusStore(a.config.Corpus.DatabasePath, a.logger)
		if err != nil {
			return nil, nil, err
		}
		stream, err := store.Stream(cmd.Context())
		if err != nil {
			closeStore()
			return nil, nil, err
		}
		return stream, func() {
			_ = stream.Close()
			closeStore()
		}, nil

	case len(files) > 0:
		corpusFiles, err := corpus.Open(files...)
		if err != nil {
			return nil, nil, err
		}
		a.logger.Debug("Training from files", slog.Int("files", len(files)))
		return corpusFiles, func() { _ = corpusFiles.Close() }, nil

	default:
		a.logger.Debug("Training from stdin")
		return corpus.NewReader(cmd.InOrStdin()), func() {}, nil
	}
}
