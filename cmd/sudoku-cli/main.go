package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudokusolve/internal/solver"
	"svw.info/sudokusolve/internal/usecase"
	"svw.info/sudokusolve/internal/validator"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sudoku-cli",
		Short:         "Solve 9x9 Sudoku puzzles with backtracking search",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	uc := usecase.NewService(solver.NewBacktracking(), validator.New(), nil)
	root.AddCommand(
		newSolveCommand(uc),
		newExamplesCommand(),
		newInteractiveCommand(uc),
	)
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
