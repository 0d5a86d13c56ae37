package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCorpusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Inspect and manage the corpus database",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored documents in training order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeStore, err := openCorpusStore(a.config.Corpus.DatabasePath, a.logger)
			if err != nil {
				return err
			}
			defer closeStore()

			docs, err := store.Documents(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list documents: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCHARACTERS")
			for _, doc := range docs {
				fmt.Fprintf(tw, "%d\t%s\t%d\n", doc.Id, doc.Name, doc.Length)
			}
			return tw.Flush()
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openCorpusStore(a.config.Corpus.DatabasePath, a.logger)
			if err != nil {
				return err
			}
			defer closeStore()

			if err = store.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(listCmd, removeCmd)
	return cmd
}
