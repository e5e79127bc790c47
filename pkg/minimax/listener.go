package minimax

// SearchInfo is the snapshot handed to listener callbacks after a search
// ends. Value is informational, the functional contract of BestMove is
// only the chosen move.
type SearchInfo[U MoveLike] struct {
	Depth      int
	Value      Value
	Move       U
	HasMove    bool
	Candidates int // size of the root tie-break set
	Nodes      int
	Cutoffs    int
	TimeMs     int
}

// Listener function callback, receives the final search statistics
type ListenerFunc[U MoveLike] func(SearchInfo[U])

type StatsListener[U MoveLike] struct {
	// called once when the search finishes
	onStop ListenerFunc[U]
}

func NewStatsListener[U MoveLike]() StatsListener[U] {
	return StatsListener[U]{}
}

// Attach 'on search end' callback, called once after BestMove returns
// its result
func (listener *StatsListener[U]) OnStop(onStop ListenerFunc[U]) *StatsListener[U] {
	listener.onStop = onStop
	return listener
}
