package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a board from the text format produced by String.
// Blank lines and whitespace around lines and tokens are ignored; the
// remaining lines must form exactly 4 rows of 4 cells between 5 '|'
// delimiters. A blank cell slot is the empty cell.
//
// Malformed text and well-formed grids that violate tile uniqueness are
// both reported as errors. Parse never panics on bad input.
func Parse(s string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrBadRowCount, len(rows))
	}

	var b Board
	for row, line := range rows {
		parts := strings.Split(line, "|")
		// A well-formed row splits into 4 cell slots plus the empty
		// fragments outside the outer delimiters.
		if len(parts) != Size+2 || parts[0] != "" || parts[Size+1] != "" {
			return nil, fmt.Errorf("%w: row %d", ErrBadColCount, row)
		}
		for col, token := range parts[1 : Size+1] {
			token = strings.TrimSpace(token)
			if token == "" {
				continue // EmptyCell, cells are zeroed already
			}
			val, err := strconv.ParseUint(token, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at row %d", ErrBadToken, token, row)
			}
			b.cells[row*Size+col] = int(val)
		}
	}

	if !b.IsValid() {
		return nil, ErrInvalidBoard
	}
	return &b, nil
}
