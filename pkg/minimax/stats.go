package minimax

// SearchStats counts the work done by a single BestMove call. The search
// is fully synchronous, so plain ints are enough here.
type SearchStats struct {
	// Nodes entered by the engine, root included
	Nodes int

	// Depth-limit leafs scored with the heuristic evaluator
	Leafs int

	// Decided end states and no-move positions
	Terminals int

	// Times the remaining siblings of a node were skipped
	Cutoffs int

	// Deepest recursion level reached
	MaxDepth int

	// Wall time of the search in milliseconds
	TimeMs int
}

func (stats *SearchStats) reset() {
	*stats = SearchStats{}
}
