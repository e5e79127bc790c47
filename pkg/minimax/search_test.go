package minimax

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Synthetic game used by the engine tests. The whole game tree is spelled
// out ahead of time, the board is just a cursor walking it with a path
// stack, which makes apply/undo trivially exact inverses.

type treeNode struct {
	eval     Value
	end      Value
	moves    []string
	children map[string]*treeNode
}

type branch struct {
	move string
	node *treeNode
}

func leaf(eval Value) *treeNode {
	return &treeNode{eval: eval}
}

func node(branches ...branch) *treeNode {
	n := &treeNode{children: make(map[string]*treeNode, len(branches))}
	for _, b := range branches {
		n.moves = append(n.moves, b.move)
		n.children[b.move] = b.node
	}
	return n
}

type treeBoard struct {
	path []*treeNode
}

func newTreeBoard(root *treeNode) *treeBoard {
	return &treeBoard{path: []*treeNode{root}}
}

func (b *treeBoard) current() *treeNode {
	return b.path[len(b.path)-1]
}

type treeOps struct{}

func (treeOps) GenerateMoves(b *treeBoard, ownTurn bool) []string {
	return b.current().moves
}

func (treeOps) MakeMove(b *treeBoard, move string) {
	b.path = append(b.path, b.current().children[move])
}

func (treeOps) UndoMove(b *treeBoard, move string) {
	b.path = b.path[:len(b.path)-1]
}

func (treeOps) Evaluate(b *treeBoard) Value {
	return b.current().eval
}

func (treeOps) EvaluateEndState(b *treeBoard) Value {
	return b.current().end
}

func newTreeSearch(depth int) *Search[*treeBoard, string] {
	return New[*treeBoard, string](treeOps{}).
		SetDepth(depth).
		SetRand(rand.New(rand.NewSource(42)))
}

// Plain exhaustive minimax over the synthetic tree, same termination
// precedence as the engine but no pruning. Returns (value, visited nodes),
// the reference for the equivalence test.
func fullMinimax(n *treeNode, remaining int, ownTurn bool) (Value, int) {
	if remaining == 0 {
		return n.eval, 1
	}
	if n.end < 0 {
		return LossScore, 1
	}
	if n.end > 0 {
		return WinScore, 1
	}
	if len(n.moves) == 0 {
		return 0, 1
	}

	best := negInfinity
	if !ownTurn {
		best = posInfinity
	}
	nodes := 1
	for _, move := range n.moves {
		value, childNodes := fullMinimax(n.children[move], remaining-1, !ownTurn)
		nodes += childNodes
		if ownTurn {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}
	return best, nodes
}

// The tree from the pruning tests: after searching the left minimizer
// (value 3) the right one gets refuted by its first leaf (2), its second
// leaf (9) must never be visited.
func pruningTree() *treeNode {
	return node(
		branch{"L", node(branch{"l1", leaf(3)}, branch{"l2", leaf(5)})},
		branch{"R", node(branch{"r1", leaf(2)}, branch{"r2", leaf(9)})},
	)
}

func TestDepthZeroIdentity(t *testing.T) {
	root := node(branch{"a", leaf(3)}, branch{"b", leaf(7)})
	root.eval = 42
	board := newTreeBoard(root)

	result, err := newTreeSearch(0).BestMove(board)
	require.NoError(t, err)

	assert.False(t, result.HasMove)
	assert.Equal(t, Value(42), result.Value)
	assert.Len(t, board.path, 1, "board must be untouched at depth 0")
}

func TestBoardRestoration(t *testing.T) {
	board := newTreeBoard(pruningTree())
	root := board.current()

	for depth := 0; depth <= 4; depth++ {
		_, err := newTreeSearch(depth).BestMove(board)
		require.NoError(t, err)
		require.Len(t, board.path, 1, "depth %d left moves applied", depth)
		require.Same(t, root, board.current())
	}
}

func TestTerminalPrecedence(t *testing.T) {
	// A decided root returns the sentinel, available moves or not
	root := node(branch{"a", leaf(1)}, branch{"b", leaf(2)})
	root.end = 1

	result, err := newTreeSearch(3).BestMove(newTreeBoard(root))
	require.NoError(t, err)
	assert.False(t, result.HasMove)
	assert.Equal(t, WinScore, result.Value)

	root.end = -1
	result, err = newTreeSearch(3).BestMove(newTreeBoard(root))
	require.NoError(t, err)
	assert.False(t, result.HasMove)
	assert.Equal(t, LossScore, result.Value)
}

func TestNoMoveDraw(t *testing.T) {
	result, err := newTreeSearch(2).BestMove(newTreeBoard(&treeNode{}))
	require.NoError(t, err)

	assert.False(t, result.HasMove)
	assert.Equal(t, Value(0), result.Value)
}

func TestAlphaBetaEquivalence(t *testing.T) {
	root := pruningTree()

	want, fullNodes := fullMinimax(root, 2, true)
	require.Equal(t, Value(3), want)
	require.Equal(t, 7, fullNodes)

	search := newTreeSearch(2)
	result, err := search.BestMove(newTreeBoard(root))
	require.NoError(t, err)

	// Pruning never changes the value, only the number of visited nodes
	assert.Equal(t, want, result.Value)
	assert.Equal(t, "L", result.Move)
	assert.Less(t, search.Stats().Nodes, fullNodes)
	assert.Equal(t, 1, search.Stats().Cutoffs)
}

func TestCutoffUndoesVisitedSiblings(t *testing.T) {
	ops := &countingTreeOps{}
	board := newTreeBoard(pruningTree())

	search := New[*treeBoard, string](ops).
		SetDepth(2).
		SetRand(rand.New(rand.NewSource(42)))
	_, err := search.BestMove(board)
	require.NoError(t, err)

	// L, its 2 leaves, R and only its first leaf get applied, the pruned
	// sibling r2 is skipped without ever touching the board
	assert.Equal(t, 5, ops.applies)
	assert.Equal(t, ops.applies, ops.undos)
	assert.Len(t, board.path, 1)
}

type countingTreeOps struct {
	treeOps
	applies int
	undos   int
}

func (o *countingTreeOps) MakeMove(b *treeBoard, move string) {
	o.applies++
	o.treeOps.MakeMove(b, move)
}

func (o *countingTreeOps) UndoMove(b *treeBoard, move string) {
	o.undos++
	o.treeOps.UndoMove(b, move)
}

func TestConcreteScenario(t *testing.T) {
	// Three root moves scored {5, 9, 9} one ply down: value 9, and the
	// chosen move alternates between the two tied ones
	root := node(
		branch{"a", leaf(5)},
		branch{"b", leaf(9)},
		branch{"c", leaf(9)},
	)
	board := newTreeBoard(root)
	search := newTreeSearch(1)

	chosen := make(map[string]int)
	for i := 0; i < 200; i++ {
		result, err := search.BestMove(board)
		require.NoError(t, err)
		require.True(t, result.HasMove)
		require.Equal(t, Value(9), result.Value)
		chosen[result.Move]++
	}

	assert.Zero(t, chosen["a"])
	assert.Positive(t, chosen["b"])
	assert.Positive(t, chosen["c"])
}

func TestTieBreakDistribution(t *testing.T) {
	root := node(branch{"a", leaf(9)}, branch{"b", leaf(9)})
	board := newTreeBoard(root)
	search := newTreeSearch(1)

	const trials = 2000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		result, err := search.BestMove(board)
		require.NoError(t, err)
		counts[result.Move]++
	}

	// Statistical, not exact: a fair pick stays well within 40-60%
	for _, move := range []string{"a", "b"} {
		assert.Greater(t, counts[move], trials*2/5, "move %s picked too rarely", move)
		assert.Less(t, counts[move], trials*3/5, "move %s picked too often", move)
	}
}

func TestDeeperTreeKeepsPrecedence(t *testing.T) {
	// A won line below the root: the minimizer side prefers the finite
	// heuristic over handing the root player the forced win
	root := node(
		branch{"x", node(
			branch{"win", func() *treeNode { n := leaf(0); n.end = 1; return n }()},
			branch{"quiet", node(branch{"q", leaf(-2)})},
		)},
	)

	search := newTreeSearch(3)
	result, err := search.BestMove(newTreeBoard(root))
	require.NoError(t, err)

	assert.True(t, result.HasMove)
	assert.Equal(t, "x", result.Move)
	assert.Equal(t, Value(-2), result.Value)
}
