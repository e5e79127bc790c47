package minimax

import "math"

// Value is a heuristic score, higher favors the root (maximizing) player.
type Value float64

const (
	// WinScore/LossScore are the forced win/loss sentinels returned for
	// decided end states. They sit far outside the heuristic range, so a
	// forced result always dominates any heuristic evaluation.
	WinScore  Value = 9e9
	LossScore Value = -9e9

	// Heuristic evaluators must keep their output within these bounds,
	// one unit is reserved below/above the sentinels.
	MaxHeuristic Value = WinScore - 1
	MinHeuristic Value = LossScore + 1
)

// Default search depth used by New, see Search.SetDepth
const DefaultDepth = 4

// Initial running-best values, strictly outside even the sentinel range so
// the first visited child always becomes the best one
var (
	negInfinity = Value(math.Inf(-1))
	posInfinity = Value(math.Inf(1))
)
