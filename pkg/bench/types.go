package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

// PositionLike is the game surface the arena drives, one mutable position
// shared by both agents within a game.
type PositionLike[U minimax.MoveLike, P any] interface {
	MakeMove(U)
	IsTerminated() bool
	IsDraw() bool
	Clone() P
}

// AgentLike picks a move for the side to play. ok=false means the agent
// has nothing to play on a non-terminated position, the arena scores the
// game as a draw then.
type AgentLike[U minimax.MoveLike, P any] interface {
	Name() string
	ChooseMove(pos P) (move U, ok bool)
}

// AgentFactory builds a fresh agent for a single game. 'first' tells the
// agent whether it makes the opening move, so perspective-bound evaluators
// can be set up for the right side. A fresh agent per game also keeps the
// underlying searchers free of cross-game state when games run on several
// workers.
type AgentFactory[U minimax.MoveLike, P any] func(first bool) AgentLike[U, P]

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

// represents result from the first-player's perspective in a single game
type GameOutcome struct {
	FirstPlayerWon bool
	IsDraw         bool
}

// maps a game outcome to which agent won, given player assignments
func toAgentResult(outcome GameOutcome, p1WentFirst bool) VersusMatchResult {
	if outcome.IsDraw {
		return VersusDraw
	}

	if p1WentFirst == outcome.FirstPlayerWon {
		return VersusPl1Win
	}
	return VersusPl2Win
}

// determines the winner from the finished position and the move history
func computeOutcome[U minimax.MoveLike, P PositionLike[U, P]](
	gamePos P,
	moveCount int,
) GameOutcome {
	if !gamePos.IsTerminated() {
		panic("computeOutcome: position not terminated")
	}

	if gamePos.IsDraw() {
		return GameOutcome{IsDraw: true}
	}

	firstPlayerWon := (moveCount%2 == 1)
	return GameOutcome{FirstPlayerWon: firstPlayerWon}
}
