package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newIngestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <files...>",
		Short: "Store text files in the corpus database",
		Long: `Store each file as a corpus document named after its base file name.
Ingesting a name that already exists replaces that document's text.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openCorpusStore(a.config.Corpus.DatabasePath, a.logger)
			if err != nil {
				return err
			}
			defer closeStore()

			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("could not open %s: %w", path, err)
				}
				name := filepath.Base(path)
				id, err := store.AddReader(cmd.Context(), name, f)
				_ = f.Close()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "stored %s (id %d)\n", name, id)
			}
			return nil
		},
	}
}
