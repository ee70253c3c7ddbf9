package solver

import (
	"context"
	"errors"

	"github.com/rybkr/puzzle15/internal/board"
)

var (
	ErrInvalidBoard  = errors.New("board violates puzzle invariants")
	ErrDepthExceeded = errors.New("no path within the depth limit")
	ErrNoPath        = errors.New("goal unreachable from start")
	ErrTimeout       = errors.New("search timeout exceeded")
)

// Solver finds minimum-length move sequences between board states.
type Solver struct {
	start   *board.Board
	goal    *board.Board
	options *Options
}

// New creates a solver for the given start and goal boards.
// Both boards are cloned; the caller's copies are never mutated.
func New(start, goal *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	return &Solver{
		start:   start.Clone(),
		goal:    goal.Clone(),
		options: options,
	}
}

// FindShortestPath returns the minimum-length sequence of legal moves
// transforming start into goal, using default options.
func FindShortestPath(start, goal *board.Board) ([]board.Move, error) {
	return New(start, goal, nil).Solve()
}

// Solve runs a breadth-first search over move sequences and returns the
// shortest one reaching the goal.
//
// The frontier holds the paths discovered at the current level; every
// path at one level has equal length, so the first path to reach any
// state is a shortest path to it. States are therefore marked visited
// at first discovery and pruned on every later encounter. A path that
// produces the goal is returned immediately, before deduplication, which
// keeps the result minimal and deterministic given the fixed move order.
//
// ErrDepthExceeded and ErrNoPath are not recoverable in any useful way:
// they fire only when the goal is unreachable or MaxDepth is undersized,
// so callers should treat them as fatal.
func (s *Solver) Solve() ([]board.Move, error) {
	if !s.start.IsValid() || !s.goal.IsValid() {
		return nil, ErrInvalidBoard
	}
	if s.start.Equal(s.goal) {
		return []board.Move{}, nil
	}

	ctx, cancel := s.makeContext()
	defer cancel()

	frontier := [][]board.Move{{}}
	visited := make(map[[board.CellCount]int]struct{})

	for depth := 1; depth <= s.options.MaxDepth; depth++ {
		select {
		case <-ctx.Done():
			return nil, ErrTimeout
		default:
		}

		next := make([][]board.Move, 0, len(frontier))
		for _, path := range frontier {
			state := s.replay(path)
			for _, m := range board.AllMoves {
				candidate := state.Clone()
				if !candidate.Apply(m) {
					continue
				}
				if candidate.Equal(s.goal) {
					return extend(path, m), nil
				}
				key := candidate.Key()
				if _, seen := visited[key]; seen {
					continue
				}
				visited[key] = struct{}{}
				next = append(next, extend(path, m))
			}
		}
		if len(next) == 0 {
			return nil, ErrNoPath
		}
		frontier = next
	}

	return nil, ErrDepthExceeded
}

// replay rebuilds the board reached by following path from the start.
func (s *Solver) replay(path []board.Move) *board.Board {
	b := s.start.Clone()
	b.ApplyAll(path)
	return b
}

// extend appends a move onto a copy of path. The full slice expression
// forces a reallocation so sibling paths never share a backing array.
func extend(path []board.Move, m board.Move) []board.Move {
	return append(path[:len(path):len(path)], m)
}

// makeContext builds the search context, bounded by the configured
// timeout when one is set.
func (s *Solver) makeContext() (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.options.Timeout)
	}
	return context.WithCancel(context.Background())
}
