package scramble

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rybkr/puzzle15/internal/board"
)

func TestGenerateProducesValidBoard(t *testing.T) {
	b, moves, err := New(&Options{Moves: 30, Seed: 1}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !b.IsValid() {
		t.Fatalf("scrambled board is invalid:\n%s", b)
	}
	if len(moves) != 30 {
		t.Fatalf("expected 30 moves, got %d", len(moves))
	}
}

func TestGenerateSequenceReproducesBoard(t *testing.T) {
	b, moves, err := New(&Options{Moves: 25, Seed: 7}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	replayed := board.New()
	if got := replayed.ApplyAll(moves); got != len(moves) {
		t.Fatalf("scramble sequence: %d of %d moves applied", got, len(moves))
	}
	if !replayed.Equal(b) {
		t.Fatalf("replayed board differs:\n%swant:\n%s", replayed, b)
	}
}

func TestGenerateReversedInversesSolve(t *testing.T) {
	b, moves, err := New(&Options{Moves: 40, Seed: 3}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for i := len(moves) - 1; i >= 0; i-- {
		if !b.Apply(moves[i].Inverse()) {
			t.Fatalf("undo move %d (%s) was illegal", i, moves[i].Inverse())
		}
	}
	if !b.Equal(board.New()) {
		t.Fatalf("expected solved board after undoing scramble, got:\n%s", b)
	}
}

func TestGenerateNeverUndoesItself(t *testing.T) {
	_, moves, err := New(&Options{Moves: 50, Seed: 11}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i := 1; i < len(moves); i++ {
		if moves[i] == moves[i-1].Inverse() {
			t.Fatalf("move %d (%s) undoes move %d (%s)", i, moves[i], i-1, moves[i-1])
		}
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	b1, m1, err := New(&Options{Moves: 20, Seed: 42}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b2, m2, err := New(&Options{Moves: 20, Seed: 42}).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !b1.Equal(b2) {
		t.Fatal("same seed should produce the same board")
	}
	if diff := cmp.Diff(m1, m2); diff != "" {
		t.Fatalf("same seed should produce the same moves (-first +second):\n%s", diff)
	}
}

func TestGenerateRejectsBadMoveCount(t *testing.T) {
	if _, _, err := New(&Options{Moves: 0}).Generate(); !errors.Is(err, ErrInvalidMoveCount) {
		t.Fatalf("expected ErrInvalidMoveCount, got %v", err)
	}
	if _, _, err := New(&Options{Moves: -3}).Generate(); !errors.Is(err, ErrInvalidMoveCount) {
		t.Fatalf("expected ErrInvalidMoveCount, got %v", err)
	}
}
