package minimax

// alphabeta is the recursive engine. Termination precedence at each node:
//
//  1. depth limit reached -> heuristic evaluation, no move
//  2. decided end state   -> win/loss sentinel, no move
//  3. no legal moves      -> neutral draw score, no move
//
// Otherwise every generated move is applied, searched one level deeper
// with the roles flipped, and undone again. The engine keeps the whole
// set of moves tying for the best value, not just the first one, so it
// never short-circuits on an improving move, enumeration stops only when
// the moves run out or alpha exceeds beta.
func (s *Search[T, U]) alphabeta(board T, depth int, alpha, beta Value, ownTurn bool) SearchResult[U] {
	s.stats.Nodes++
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}

	if depth == s.maxDepth {
		s.stats.Leafs++
		return SearchResult[U]{Value: s.ops.Evaluate(board)}
	}

	// A decided game has priority over move generation, the end state
	// evaluator keeps the root player's sign convention at every node
	if end := s.ops.EvaluateEndState(board); end < 0 {
		s.stats.Terminals++
		return SearchResult[U]{Value: LossScore}
	} else if end > 0 {
		s.stats.Terminals++
		return SearchResult[U]{Value: WinScore}
	}

	moves := s.ops.GenerateMoves(board, ownTurn)
	if len(moves) == 0 {
		// Stalemate, nobody won and there is nothing left to play
		s.stats.Terminals++
		return SearchResult[U]{Value: 0}
	}

	best := negInfinity
	if !ownTurn {
		best = posInfinity
	}
	bestMoves := make([]U, 0, len(moves))

	for _, move := range moves {
		s.ops.MakeMove(board, move)
		child := s.alphabeta(board, depth+1, alpha, beta, !ownTurn)
		// Undo before any bookkeeping, a visited move must be taken back
		// even when the remaining siblings get pruned right after
		s.ops.UndoMove(board, move)

		switch {
		case ownTurn && child.Value > best, !ownTurn && child.Value < best:
			best = child.Value
			bestMoves = append(bestMoves[:0], move)
			if ownTurn {
				alpha = max(alpha, best)
			} else {
				beta = min(beta, best)
			}
		case child.Value == best:
			bestMoves = append(bestMoves, move)
		}

		if alpha > beta {
			s.stats.Cutoffs++
			break
		}
	}

	if depth == 0 {
		s.rootCandidates = len(bestMoves)
	}

	// Unreachable with well-behaved callbacks (the first child is always
	// strictly better than the infinite starting bound), kept as a guard
	if len(bestMoves) == 0 {
		return SearchResult[U]{Value: best}
	}

	return SearchResult[U]{
		Move:    bestMoves[s.rand.Intn(len(bestMoves))],
		HasMove: true,
		Value:   best,
	}
}
