package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/gridio"
	"svw.info/sudokusolve/internal/usecase"
)

func newInteractiveCommand(uc *usecase.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Enter a puzzle row by row, then solve it",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Enter 9 numbers per row, separated by spaces (0 = empty).")
			fmt.Fprintln(out, "Example: 5 3 0 0 7 0 0 0 0")

			var b domain.Board
			sc := bufio.NewScanner(cmd.InOrStdin())
			for r := 0; r < 9; {
				fmt.Fprintf(out, "Row %d: ", r+1)
				if !sc.Scan() {
					if err := sc.Err(); err != nil {
						return err
					}
					return fmt.Errorf("input ended after %d rows", r)
				}
				row, err := gridio.ParseRow(sc.Text())
				if err != nil {
					fmt.Fprintln(out, "Error:", err)
					continue
				}
				b.Values[r] = row
				r++
			}
			return runSolve(cmd, uc, &b)
		},
	}
}
