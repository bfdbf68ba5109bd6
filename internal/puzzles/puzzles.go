// Package puzzles holds the built-in example boards offered by the CLI
// menu and the HTTP API.
package puzzles

import "svw.info/sudokusolve/internal/domain"

// Example is a named built-in board.
type Example struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Board       domain.Board `json:"board"`
}

var examples = []Example{
	{
		Name:        "easy",
		Description: "A classic easy puzzle with a unique solution",
		Board: domain.Board{Values: [9][9]uint8{
			{5, 3, 0, 0, 7, 0, 0, 0, 0},
			{6, 0, 0, 1, 9, 5, 0, 0, 0},
			{0, 9, 8, 0, 0, 0, 0, 6, 0},
			{8, 0, 0, 0, 6, 0, 0, 0, 3},
			{4, 0, 0, 8, 0, 3, 0, 0, 1},
			{7, 0, 0, 0, 2, 0, 0, 0, 6},
			{0, 6, 0, 0, 0, 0, 2, 8, 0},
			{0, 0, 0, 4, 1, 9, 0, 0, 5},
			{0, 0, 0, 0, 8, 0, 0, 7, 9},
		}},
	},
	{
		Name:        "hard",
		Description: "A sparse puzzle that forces deep backtracking",
		Board: domain.Board{Values: [9][9]uint8{
			{0, 0, 0, 6, 0, 0, 4, 0, 0},
			{7, 0, 0, 0, 0, 3, 6, 0, 0},
			{0, 0, 0, 0, 9, 1, 0, 8, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 5, 0, 1, 8, 0, 0, 0, 3},
			{0, 0, 0, 3, 0, 6, 0, 4, 5},
			{0, 4, 0, 2, 0, 0, 0, 6, 0},
			{9, 0, 3, 0, 0, 0, 0, 0, 0},
			{0, 2, 0, 0, 0, 0, 1, 0, 0},
		}},
	},
	{
		Name:        "unsolvable",
		Description: "The easy puzzle with a conflicting 5 added; has no solution",
		Board: domain.Board{Values: [9][9]uint8{
			{5, 3, 0, 0, 7, 0, 0, 0, 0},
			{6, 0, 0, 1, 9, 5, 0, 0, 0},
			{0, 9, 8, 0, 0, 0, 0, 6, 0},
			{8, 0, 0, 0, 6, 0, 0, 0, 3},
			{4, 0, 0, 8, 0, 3, 0, 0, 1},
			{7, 0, 0, 0, 2, 0, 0, 0, 6},
			{0, 6, 0, 0, 0, 0, 2, 8, 0},
			{0, 0, 0, 4, 1, 9, 0, 0, 5},
			{5, 0, 0, 0, 8, 0, 0, 7, 9},
		}},
	},
}

// All returns the catalog in listing order.
func All() []Example {
	out := make([]Example, len(examples))
	copy(out, examples)
	return out
}

// Get looks an example up by name.
func Get(name string) (Example, bool) {
	for _, e := range examples {
		if e.Name == name {
			return e, true
		}
	}
	return Example{}, false
}
