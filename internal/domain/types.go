package domain

// Board holds the current cell values of a 9x9 grid.
// 0 marks an empty cell, 1-9 a placed digit.
type Board struct {
	Values [9][9]uint8 `json:"board"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Board     Board  `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
