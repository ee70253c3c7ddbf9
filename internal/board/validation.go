package board

import "errors"

var (
	ErrBadRowCount  = errors.New("board text must have exactly 4 non-blank rows")
	ErrBadColCount  = errors.New("board row must have exactly 4 cells")
	ErrBadToken     = errors.New("cell is not a tile number")
	ErrInvalidBoard = errors.New("board violates tile uniqueness")
	ErrUnknownMove  = errors.New("unknown move name")
)

// IsValid reports whether the board is a permutation of the tiles 1-15
// plus a single empty cell. A single pass tracks every value seen; any
// out-of-range tile or repeated value, a second empty cell included,
// fails immediately. With 16 cells and 16 admissible values, a clean
// scan pins each value to exactly one cell.
func (b *Board) IsValid() bool {
	var seen [CellCount]bool
	for _, cell := range b.cells {
		if cell < EmptyCell || cell > MaxTile {
			return false
		}
		if seen[cell] {
			return false
		}
		seen[cell] = true
	}
	return true
}
