package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudokusolve/internal/gridio"
	"svw.info/sudokusolve/internal/puzzles"
)

func newExamplesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List the built-in example puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, e := range puzzles.All() {
				fmt.Fprintf(out, "%-12s %s\n", e.Name, e.Description)
			}
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Render one example puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := puzzles.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown example %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", e.Name, e.Description)
			fmt.Fprint(cmd.OutOrStdout(), gridio.Render(&e.Board))
			return nil
		},
	})
	return cmd
}
