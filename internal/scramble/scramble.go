package scramble

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rybkr/puzzle15/internal/board"
)

const DefaultMoves = 25

var ErrInvalidMoveCount = errors.New("scramble move count must be positive")

// Options configures scramble generation.
type Options struct {
	Moves int   // Number of legal moves to walk from the solved board
	Seed  int64 // Seed for reproducible scrambles (0 = random)
}

// DefaultOptions returns standard scramble options.
func DefaultOptions() *Options {
	return &Options{
		Moves: DefaultMoves,
		Seed:  0,
	}
}

// Scrambler produces solvable start positions by walking legal moves
// away from the solved board. Every board it returns is reachable, so
// the solver is guaranteed a path back.
type Scrambler struct {
	options *Options
	rng     *rand.Rand
}

// New creates a scrambler with the given options.
func New(options *Options) *Scrambler {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Scrambler{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate returns a scrambled board together with the move sequence
// that produced it from the solved board. Each step picks a random
// legal move that does not undo the previous one, so the walk never
// trivially collapses. Applying the reversed, inverted sequence to the
// result restores the solved board.
func (g *Scrambler) Generate() (*board.Board, []board.Move, error) {
	if g.options.Moves < 1 {
		return nil, nil, ErrInvalidMoveCount
	}

	b := board.New()
	moves := make([]board.Move, 0, g.options.Moves)
	for len(moves) < g.options.Moves {
		// The empty cell always has at least two legal moves, so
		// excluding the inverse of the last one leaves a candidate.
		candidates := make([]board.Move, 0, len(board.AllMoves))
		for _, m := range board.AllMoves {
			if len(moves) > 0 && m == moves[len(moves)-1].Inverse() {
				continue
			}
			if b.Clone().Apply(m) {
				candidates = append(candidates, m)
			}
		}

		m := candidates[g.rng.Intn(len(candidates))]
		b.Apply(m)
		moves = append(moves, m)
	}

	return b, moves, nil
}
