package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	var tf trainFlags

	cmd := &cobra.Command{
		Use:   "stats [corpus files...]",
		Short: "Train on a corpus and print model statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.trainModel(cmd, &tf, args)
			if err != nil {
				return err
			}

			s := m.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "window_length:  %d\n", s.WindowLength)
			fmt.Fprintf(out, "windows:        %d\n", s.Windows)
			fmt.Fprintf(out, "transitions:    %d\n", s.Transitions)
			fmt.Fprintf(out, "distinct_chars: %d\n", s.DistinctChars)
			return nil
		},
	}
	tf.register(cmd)
	return cmd
}

func newDumpCmd(a *app) *cobra.Command {
	var tf trainFlags

	cmd := &cobra.Command{
		Use:   "dump [corpus files...]",
		Short: "Train on a corpus and print every window with its frequency table",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.trainModel(cmd, &tf, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), m.String())
			return err
		},
	}
	tf.register(cmd)
	return cmd
}
