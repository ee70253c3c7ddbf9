package board

import (
	"fmt"
	"strings"
)

// Special cell values
const (
	EmptyCell = 0
	Size      = 4
	CellCount = Size * Size
	MaxTile   = CellCount - 1
)

// Board represents a 4x4 fifteen-puzzle board.
// A valid board holds each tile 1-15 exactly once plus a single empty cell.
// Cells are addressed by (col, row) coordinates, both in [0, 4).
type Board struct {
	cells [CellCount]int
}

// New creates the solved board: tiles 1-15 in reading order,
// left to right and top to bottom, with the empty cell bottom-right.
func New() *Board {
	var b Board
	for pos := 0; pos < CellCount-1; pos++ {
		b.cells[pos] = pos + 1
	}
	return &b
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Get returns the tile at (col, row), or EmptyCell.
// Out-of-range coordinates are a programming error and panic.
func (b *Board) Get(col, row int) int {
	return b.cells[makePos(col, row)]
}

// Set overwrites the cell at (col, row) without validation.
// The caller is responsible for keeping the board valid; boards mutated
// through Set are not re-checked until IsValid is called explicitly.
func (b *Board) Set(col, row, val int) {
	b.cells[makePos(col, row)] = val
}

// Swap exchanges the contents of two cells.
func (b *Board) Swap(c1, r1, c2, r2 int) {
	p1, p2 := makePos(c1, r1), makePos(c2, r2)
	b.cells[p1], b.cells[p2] = b.cells[p2], b.cells[p1]
}

// EmptyLoc returns the (col, row) of the empty cell.
// Panics when the board has none: every board built through New, Parse,
// or legal moves has exactly one, so a missing empty cell means a caller
// broke the invariant through Set or Swap.
func (b *Board) EmptyLoc() (col, row int) {
	for pos, cell := range b.cells {
		if cell == EmptyCell {
			return pos % Size, pos / Size
		}
	}
	panic("board: no empty cell")
}

// Equal reports whether every cell matches between the two boards.
func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells
}

// Key returns the cell contents as a comparable value, suitable as a map
// key when deduplicating board states.
func (b *Board) Key() [CellCount]int {
	return b.cells
}

// String renders the board in the canonical text format: four lines of
// four cells, each cell a right-aligned 2-wide field between '|'
// delimiters, with the empty cell left blank.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			val := b.cells[row*Size+col]
			if val == EmptyCell {
				sb.WriteString("|    ")
			} else {
				fmt.Fprintf(&sb, "| %2d ", val)
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

// makePos transforms (col, row) into a linear cell position.
// Bounds are an internal invariant, not caller input, so violations panic.
func makePos(col, row int) int {
	if col < 0 || col >= Size || row < 0 || row >= Size {
		panic(fmt.Sprintf("board: position (%d,%d) out of bounds", col, row))
	}
	return row*Size + col
}
