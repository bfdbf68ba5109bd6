package solver

// Backtracking is a straightforward recursive depth-first solver.
// Digits are tried in ascending order and empty cells are visited
// row-major, so solves are fully deterministic.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// isValid reports whether v may be placed at (r,c). The cell's own
// content is ignored; callers place only into empty cells.
func isValid(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// findEmpty returns the first empty cell in row-major order.
func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
