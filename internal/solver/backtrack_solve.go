package solver

import (
	"context"
	"time"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

// Solve searches for a solution in place. On success the board holds the
// solution; on failure every trial placement has been undone and the board
// is byte-identical to its input state. Stats.Calls counts entries into the
// search procedure, including the final call that finds the grid full.
//
// The board must be consistent on entry (no duplicate digit in any row,
// column, or box); callers are expected to validate first.
func (s *Backtracking) Solve(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := &b.Values
	calls := 0

	var dfs func() bool
	dfs = func() bool {
		calls++
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			if isValid(grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}

	solved := dfs()
	st := ports.Stats{Calls: calls, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return solved, st, nil
}
