package ports

import (
	"context"
	"time"

	"svw.info/sudokusolve/internal/domain"
)

// Stats captures the cost of one solve: how many times the search
// procedure was entered, and how long the whole call took.
type Stats struct {
	Calls    int
	Duration time.Duration
}

// Solver runs the backtracking search on a board in place.
// A false result means no solution exists; it is not an error.
// The board is restored to its input state whenever solved is false.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (solved bool, st Stats, err error)
}

// Validator performs fast constraint checks (range + row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
