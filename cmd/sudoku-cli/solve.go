package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/gridio"
	"svw.info/sudokusolve/internal/puzzles"
	"svw.info/sudokusolve/internal/usecase"
)

func newSolveCommand(uc *usecase.Service) *cobra.Command {
	var exampleName string
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle read from a file, stdin, or the example catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := resolveBoard(cmd.InOrStdin(), args, exampleName)
			if err != nil {
				return err
			}
			return runSolve(cmd, uc, b)
		},
	}
	cmd.Flags().StringVarP(&exampleName, "example", "e", "", "solve a built-in example puzzle by name")
	return cmd
}

func resolveBoard(stdin io.Reader, args []string, exampleName string) (*domain.Board, error) {
	if exampleName != "" {
		e, ok := puzzles.Get(exampleName)
		if !ok {
			return nil, fmt.Errorf("unknown example %q", exampleName)
		}
		b := e.Board
		return &b, nil
	}
	in := stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	return gridio.ParseBoard(in)
}

func runSolve(cmd *cobra.Command, uc *usecase.Service, b *domain.Board) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Puzzle:")
	fmt.Fprint(out, gridio.Render(b))

	solved, st, err := uc.Solve(cmd.Context(), b)
	if err != nil {
		var inv *usecase.InvalidBoardError
		if errors.As(err, &inv) {
			for _, c := range inv.Conflicts {
				fmt.Fprintf(out, "conflict at row %d, column %d\n", c.Row+1, c.Col+1)
			}
		}
		return err
	}
	if !solved {
		fmt.Fprintln(out, "No solution exists for this puzzle.")
		fmt.Fprintf(out, "Recursive calls attempted: %d\n", st.Calls)
		return nil
	}
	fmt.Fprintln(out, "Solution:")
	fmt.Fprint(out, gridio.Render(b))
	fmt.Fprintf(out, "Recursive calls: %d (%v)\n", st.Calls, st.Duration.Round(0))
	return nil
}
