package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

// Service wires the solver behind the caller-side guards: a board is
// range- and consistency-checked before the search ever sees it.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// InvalidBoardError reports a board that must not reach the solver:
// out-of-range values or conflicting givens.
type InvalidBoardError struct {
	Conflicts []domain.CellCoord
}

func (e *InvalidBoardError) Error() string {
	return fmt.Sprintf("invalid board: %d conflicting cells", len(e.Conflicts))
}

// Solve validates the board and runs the backtracking search in place.
// An unsatisfiable (but well-formed) board yields solved=false and a nil
// error; a malformed board yields an *InvalidBoardError.
func (u *Service) Solve(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	if u.Solver == nil || u.Validator == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	ok, conflicts, err := u.Validator.Validate(ctx, b)
	if err != nil {
		return false, ports.Stats{}, err
	}
	if !ok {
		return false, ports.Stats{}, &InvalidBoardError{Conflicts: conflicts}
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
