package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSolveExample(t *testing.T) {
	out, err := runCLI(t, "", "solve", "-e", "easy")
	if err != nil {
		t.Fatalf("solve failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Solution:") || !strings.Contains(out, "Recursive calls:") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, " 5  3  4  |  6  7  8  |  9  1  2 ") {
		t.Errorf("solution row missing:\n%s", out)
	}
}

func TestSolveConflictingExample(t *testing.T) {
	out, err := runCLI(t, "", "solve", "-e", "unsolvable")
	if err == nil {
		t.Fatalf("expected an error for a board with conflicting givens\n%s", out)
	}
	if !strings.Contains(out, "conflict at row 9, column 1") {
		t.Errorf("conflict location missing:\n%s", out)
	}
}

func TestSolveFromStdin(t *testing.T) {
	grid := `5 3 0 0 7 0 0 0 0
6 0 0 1 9 5 0 0 0
0 9 8 0 0 0 0 6 0
8 0 0 0 6 0 0 0 3
4 0 0 8 0 3 0 0 1
7 0 0 0 2 0 0 0 6
0 6 0 0 0 0 2 8 0
0 0 0 4 1 9 0 0 5
0 0 0 0 8 0 0 7 9
`
	out, err := runCLI(t, grid, "solve")
	if err != nil {
		t.Fatalf("solve failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Solution:") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSolveUnknownExample(t *testing.T) {
	if _, err := runCLI(t, "", "solve", "-e", "nonsense"); err == nil {
		t.Fatal("expected an error for an unknown example name")
	}
}

func TestExamplesList(t *testing.T) {
	out, err := runCLI(t, "", "examples")
	if err != nil {
		t.Fatalf("examples failed: %v", err)
	}
	for _, name := range []string{"easy", "hard", "unsolvable"} {
		if !strings.Contains(out, name) {
			t.Errorf("example %q missing from listing:\n%s", name, out)
		}
	}
}

func TestInteractiveReprompts(t *testing.T) {
	rows := []string{
		"5 3 0 0 7 0 0 0 0",
		"6 0 0 1 9 5", // short row, must be re-prompted
		"6 0 0 1 9 5 0 0 0",
		"0 9 8 0 0 0 0 6 0",
		"8 0 0 0 6 0 0 0 3",
		"4 0 0 8 0 3 0 0 1",
		"7 0 0 0 2 0 0 0 6",
		"0 6 0 0 0 0 2 8 0",
		"0 0 0 4 1 9 0 0 5",
		"0 0 0 0 8 0 0 7 9",
	}
	out, err := runCLI(t, strings.Join(rows, "\n")+"\n", "interactive")
	if err != nil {
		t.Fatalf("interactive failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Error:") {
		t.Errorf("short row not reported:\n%s", out)
	}
	if !strings.Contains(out, "Solution:") {
		t.Errorf("puzzle not solved:\n%s", out)
	}
}
