// Package minimax implements a generic two-player adversarial game-tree
// search: depth-limited minimax with alpha-beta pruning and randomized
// tie-breaking between equally good moves.
//
// The engine knows nothing about the game it searches. Board and move are
// opaque type parameters, the rules come in as five caller-supplied
// operations (move generation, apply/undo, heuristic evaluation and
// win/loss detection). Apply and undo must be exact inverses, the search
// backtracks through a single board instead of copying it.
package minimax

import (
	"errors"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"
)

// ErrNegativeDepth is returned by BestMove when the configured search
// depth is negative.
var ErrNegativeDepth = errors.New("minimax: negative search depth")

// Search is a reusable searcher bound to one set of game operations.
// It is not safe for concurrent use, run one search at a time per value
// (distinct Search values with distinct boards are fine).
type Search[T any, U MoveLike] struct {
	ops      GameOperations[T, U]
	maxDepth int
	rand     RandLike
	listener *StatsListener[U]
	logger   zerolog.Logger
	timer    *_Timer

	stats          SearchStats
	rootCandidates int
}

// Create a new searcher with the default depth, a frand-backed tie-break
// source and no logging.
func New[T any, U MoveLike](ops GameOperations[T, U]) *Search[T, U] {
	return &Search[T, U]{
		ops:      ops,
		maxDepth: DefaultDepth,
		rand:     frand.New(),
		listener: &StatsListener[U]{},
		logger:   zerolog.Nop(),
		timer:    _NewTimer(),
	}
}

// Set the maximum depth of the search, 0 means 'evaluate the current
// board immediately, no lookahead'. Negative values make BestMove fail.
// Note that the engine performs no depth throttling itself, the caller
// bounds the recursion through this value alone.
func (s *Search[T, U]) SetDepth(depth int) *Search[T, U] {
	s.maxDepth = depth
	return s
}

// Inject the tie-break randomness source, pass a seeded *rand.Rand for
// deterministic move selection
func (s *Search[T, U]) SetRand(r RandLike) *Search[T, U] {
	if r != nil {
		s.rand = r
	}
	return s
}

// Attach a logger for per-search debug summaries
func (s *Search[T, U]) SetLogger(logger zerolog.Logger) *Search[T, U] {
	s.logger = logger
	return s
}

func (s *Search[T, U]) Depth() int {
	return s.maxDepth
}

// Statistics of the last BestMove call
func (s *Search[T, U]) Stats() SearchStats {
	return s.stats
}

func (s *Search[T, U]) StatsListener() *StatsListener[U] {
	return s.listener
}

// BestMove runs the alpha-beta search from the given board and returns the
// chosen move. HasMove is false when the root position has no lookahead
// (depth 0), is already decided, or has no legal moves. The board comes
// back in exactly the state it was passed in, every applied move is
// undone on the way out.
func (s *Search[T, U]) BestMove(board T) (SearchResult[U], error) {
	if s.maxDepth < 0 {
		return SearchResult[U]{}, ErrNegativeDepth
	}

	s.stats.reset()
	s.rootCandidates = 0
	s.timer.Reset()

	// The root always plays the maximizing role
	result := s.alphabeta(board, 0, negInfinity, posInfinity, true)
	s.stats.TimeMs = s.timer.Deltatime()

	s.logger.Debug().
		Int("depth", s.maxDepth).
		Int("nodes", s.stats.Nodes).
		Int("leafs", s.stats.Leafs).
		Int("cutoffs", s.stats.Cutoffs).
		Int("time_ms", s.stats.TimeMs).
		Float64("value", float64(result.Value)).
		Bool("has_move", result.HasMove).
		Msg("search finished")

	if s.listener.onStop != nil {
		s.listener.onStop(SearchInfo[U]{
			Depth:      s.maxDepth,
			Value:      result.Value,
			Move:       result.Move,
			HasMove:    result.HasMove,
			Candidates: s.rootCandidates,
			Nodes:      s.stats.Nodes,
			Cutoffs:    s.stats.Cutoffs,
			TimeMs:     s.stats.TimeMs,
		})
	}

	return result, nil
}

// Minimax is the one-shot entry point: search 'board' up to 'maxDepth'
// plies using the given callbacks and return the chosen move. The second
// return is false when the root has no move to choose. Fails fast on a
// negative maxDepth.
func Minimax[T any, U MoveLike](
	board T,
	maxDepth int,
	generate GenerateFn[T, U],
	apply ApplyFn[T, U],
	undo UndoFn[T, U],
	evaluate EvaluateFn[T],
	evaluateEndState EndStateFn[T],
) (U, bool, error) {
	search := New[T, U](FuncOps[T, U]{
		Generate: generate,
		Apply:    apply,
		Undo:     undo,
		Eval:     evaluate,
		EndState: evaluateEndState,
	}).SetDepth(maxDepth)

	result, err := search.BestMove(board)
	return result.Move, result.HasMove, err
}
