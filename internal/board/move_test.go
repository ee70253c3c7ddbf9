package board

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApply(t *testing.T) {
	b := New()

	// The empty cell starts bottom-right: nothing to its right or below.
	if b.Apply(RightToLeft) {
		t.Fatal("right-to-left should be illegal on the solved board")
	}
	if b.Apply(BottomToTop) {
		t.Fatal("bottom-to-top should be illegal on the solved board")
	}

	if !b.Apply(TopToBottom) {
		t.Fatal("top-to-bottom should be legal on the solved board")
	}
	if !b.IsValid() {
		t.Fatal("legal move should preserve validity")
	}
	if got := b.Get(3, 3); got != 12 {
		t.Fatalf("expected 12 at (3,3), got %d", got)
	}
	if got := b.Get(3, 2); got != EmptyCell {
		t.Fatalf("expected empty at (3,2), got %d", got)
	}

	if !b.Apply(LeftToRight) {
		t.Fatal("left-to-right should be legal here")
	}
	if got := b.Get(3, 2); got != 11 {
		t.Fatalf("expected 11 at (3,2), got %d", got)
	}
	if got := b.Get(2, 2); got != EmptyCell {
		t.Fatalf("expected empty at (2,2), got %d", got)
	}
}

func TestApplyAllCountsSuccesses(t *testing.T) {
	b := New()
	if got := b.ApplyAll([]Move{RightToLeft, BottomToTop, TopToBottom}); got != 1 {
		t.Fatalf("expected 1 successful move, got %d", got)
	}

	// Illegal prefix moves are skipped, so the final board matches
	// applying just the legal tail.
	want := New()
	want.Apply(TopToBottom)
	if !b.Equal(want) {
		t.Fatalf("unexpected board after skipped moves:\n%swant:\n%s", b, want)
	}
}

func TestApplyAllThreeDown(t *testing.T) {
	b := New()
	if got := b.ApplyAll([]Move{TopToBottom, TopToBottom, TopToBottom}); got != 3 {
		t.Fatalf("expected 3 successful moves, got %d", got)
	}

	want := `|  1 |  2 |  3 |    |
|  5 |  6 |  7 |  4 |
|  9 | 10 | 11 |  8 |
| 13 | 14 | 15 | 12 |
`
	if got := b.String(); got != want {
		t.Fatalf("unexpected board:\n%swant:\n%s", got, want)
	}
}

func TestInverseUndoesSequence(t *testing.T) {
	seq := []Move{TopToBottom, LeftToRight, LeftToRight, BottomToTop, RightToLeft}
	b := New()
	if got := b.ApplyAll(seq); got != len(seq) {
		t.Fatalf("expected all %d moves to apply, got %d", len(seq), got)
	}

	undo := make([]Move, 0, len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		undo = append(undo, seq[i].Inverse())
	}
	if got := b.ApplyAll(undo); got != len(undo) {
		t.Fatalf("expected all %d undo moves to apply, got %d", len(undo), got)
	}
	if !b.Equal(New()) {
		t.Fatalf("expected solved board after undoing, got:\n%s", b)
	}
}

func TestMoveNameRoundTrip(t *testing.T) {
	for _, m := range AllMoves {
		got, err := ParseMove(m.String())
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("ParseMove(%q) = %v, want %v", m.String(), got, m)
		}
	}

	if _, err := ParseMove("sideways"); err == nil {
		t.Fatal("expected error for unknown move name")
	}
}

func TestMoveJSONRoundTrip(t *testing.T) {
	seq := []Move{TopToBottom, LeftToRight, BottomToTop}
	data, err := json.Marshal(seq)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `["top-to-bottom","left-to-right","bottom-to-top"]`
	if string(data) != want {
		t.Fatalf("unexpected JSON %s, want %s", data, want)
	}

	var got []Move
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(seq, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
