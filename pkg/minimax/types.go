package minimax

// Core callback and result types. The board type is fully opaque to the
// search, callers pass a reference to their own mutable state and the
// engine only hands it back through the callbacks. Moves must be
// comparable, so they can be collected into the tie-break set.

type MoveLike comparable

// GenerateFn returns every legal move for the side indicated by 'ownTurn'
// (true for the root player). An empty slice means no legal moves.
// Must not mutate the board.
type GenerateFn[T any, U MoveLike] func(board T, ownTurn bool) []U

// ApplyFn plays 'move' on the board, mutating it in place. Must be exactly
// reversible by the matching UndoFn, the search backtracks instead of
// copying boards.
type ApplyFn[T any, U MoveLike] func(board T, move U)

// UndoFn restores the board to its exact pre-apply state, called once per
// applied move, in strict LIFO order within a branch.
type UndoFn[T any, U MoveLike] func(board T, move U)

// EvaluateFn is the heuristic score of the board at a depth-limit leaf,
// higher favors the root player. Values must stay within
// [MinHeuristic, MaxHeuristic], so they can never be mistaken for a
// forced win or loss.
type EvaluateFn[T any] func(board T) Value

// EndStateFn reports the game outcome: negative = loss, positive = win,
// zero = game goes on. The sign convention is fixed to the root player's
// perspective at every node, not to the side to move.
type EndStateFn[T any] func(board T) Value

// GameOperations bundles the five callbacks the engine needs. Implement it
// directly on a game adapter, or use FuncOps to build one from plain
// functions.
type GameOperations[T any, U MoveLike] interface {
	GenerateMoves(board T, ownTurn bool) []U
	MakeMove(board T, move U)
	UndoMove(board T, move U)
	Evaluate(board T) Value
	EvaluateEndState(board T) Value
}

// FuncOps adapts plain functions to GameOperations.
type FuncOps[T any, U MoveLike] struct {
	Generate GenerateFn[T, U]
	Apply    ApplyFn[T, U]
	Undo     UndoFn[T, U]
	Eval     EvaluateFn[T]
	EndState EndStateFn[T]
}

func (f FuncOps[T, U]) GenerateMoves(board T, ownTurn bool) []U {
	return f.Generate(board, ownTurn)
}

func (f FuncOps[T, U]) MakeMove(board T, move U) {
	f.Apply(board, move)
}

func (f FuncOps[T, U]) UndoMove(board T, move U) {
	f.Undo(board, move)
}

func (f FuncOps[T, U]) Evaluate(board T) Value {
	return f.Eval(board)
}

func (f FuncOps[T, U]) EvaluateEndState(board T) Value {
	return f.EndState(board)
}

// SearchResult is the (move, value) pair produced at every recursion level,
// only the root's result is surfaced to the caller. HasMove is false at
// depth-limit leafs, decided end states and no-move positions.
type SearchResult[U MoveLike] struct {
	Move    U
	HasMove bool
	Value   Value
}

// RandLike is the randomness source used for tie-breaking between equally
// good moves. Both *frand.RNG and *rand.Rand satisfy it, inject a seeded
// one for deterministic runs.
type RandLike interface {
	Intn(n int) int
}
