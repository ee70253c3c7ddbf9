package board

import "fmt"

// Move identifies one of the four tile slides, named for the direction
// the sliding tile travels: LeftToRight slides the tile left of the
// empty cell into it, TopToBottom slides the tile above it down, and so
// on. The empty cell moves in the opposite direction.
type Move int

const (
	LeftToRight Move = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

// AllMoves lists the moves in the canonical expansion order used by the
// solver. The order is part of the solver contract: it makes the chosen
// path deterministic when several shortest paths exist.
var AllMoves = [4]Move{LeftToRight, RightToLeft, TopToBottom, BottomToTop}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m {
	case LeftToRight:
		return RightToLeft
	case RightToLeft:
		return LeftToRight
	case TopToBottom:
		return BottomToTop
	case BottomToTop:
		return TopToBottom
	}
	panic(fmt.Sprintf("board: unknown move %d", int(m)))
}

func (m Move) String() string {
	switch m {
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	case TopToBottom:
		return "top-to-bottom"
	case BottomToTop:
		return "bottom-to-top"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// ParseMove resolves a move from its textual name.
func ParseMove(s string) (Move, error) {
	for _, m := range AllMoves {
		if s == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

// MarshalText lets moves travel as their names in JSON payloads.
func (m Move) MarshalText() ([]byte, error) {
	if m < LeftToRight || m > BottomToTop {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMove, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements the inverse of MarshalText.
func (m *Move) UnmarshalText(text []byte) error {
	mv, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = mv
	return nil
}

// Apply performs the move when it is legal at the current position and
// reports whether it happened. A move is illegal when the cell it would
// pull a tile from lies off the grid; the board is left untouched then.
// Every successful move swaps one tile with the empty cell, so validity
// is preserved without re-checking.
func (b *Board) Apply(m Move) bool {
	col, row := b.EmptyLoc()
	switch m {
	case LeftToRight:
		if col == 0 {
			return false
		}
		b.Swap(col, row, col-1, row)
	case RightToLeft:
		if col == Size-1 {
			return false
		}
		b.Swap(col, row, col+1, row)
	case TopToBottom:
		if row == 0 {
			return false
		}
		b.Swap(col, row, col, row-1)
	case BottomToTop:
		if row == Size-1 {
			return false
		}
		b.Swap(col, row, col, row+1)
	default:
		panic(fmt.Sprintf("board: unknown move %d", int(m)))
	}
	return true
}

// ApplyAll applies the moves in order and returns how many succeeded.
// Illegal moves are skipped, not fatal: later moves still run against
// whatever board the earlier successes produced.
func (b *Board) ApplyAll(moves []Move) int {
	count := 0
	for _, m := range moves {
		if b.Apply(m) {
			count++
		}
	}
	return count
}
