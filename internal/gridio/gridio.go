// Package gridio parses boards from whitespace-separated text and renders
// them for the console. The solver itself never does I/O; everything
// user-facing goes through here.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"svw.info/sudokusolve/internal/domain"
)

var (
	ErrRowCount   = errors.New("grid must have exactly 9 rows")
	ErrTokenCount = errors.New("row must have exactly 9 values")
	ErrNotANumber = errors.New("values must be numbers")
	ErrValueRange = errors.New("values must be between 0 and 9")
)

// ParseRow parses one board row: 9 whitespace-separated integers in [0,9].
func ParseRow(line string) ([9]uint8, error) {
	var row [9]uint8
	fields := strings.Fields(line)
	if len(fields) != 9 {
		return row, fmt.Errorf("%w, got %d", ErrTokenCount, len(fields))
	}
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return row, fmt.Errorf("%w: %q", ErrNotANumber, f)
		}
		if n < 0 || n > 9 {
			return row, fmt.Errorf("%w, got %d", ErrValueRange, n)
		}
		row[i] = uint8(n)
	}
	return row, nil
}

// ParseBoard reads a full board: 9 non-empty lines of 9 values each.
// Blank lines are skipped so boards may be formatted with band gaps.
func ParseBoard(r io.Reader) (*domain.Board, error) {
	var b domain.Board
	sc := bufio.NewScanner(r)
	rows := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if rows == 9 {
			return nil, fmt.Errorf("%w, got more", ErrRowCount)
		}
		row, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rows+1, err)
		}
		b.Values[rows] = row
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if rows != 9 {
		return nil, fmt.Errorf("%w, got %d", ErrRowCount, rows)
	}
	return &b, nil
}

// Render formats the board with rules between 3-row bands, dividers
// between 3-column groups, and "." for empty cells.
func Render(b *domain.Board) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", 37))
	sb.WriteByte('\n')
	for r := 0; r < 9; r++ {
		if r%3 == 0 && r != 0 {
			sb.WriteString(strings.Repeat("-", 37))
			sb.WriteByte('\n')
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 && c != 0 {
				sb.WriteString(" | ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteString(" . ")
			} else {
				fmt.Fprintf(&sb, " %d ", v)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("=", 37))
	sb.WriteByte('\n')
	return sb.String()
}
