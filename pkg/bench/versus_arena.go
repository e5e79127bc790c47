package bench

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

/*
Arena benchmark subpackage, plays a series of games between two minimax
agent configurations (different depths, evaluators, tie-break sources)
and tallies wins, losses, draws and first-mover advantage.
*/

type VersusArena[U minimax.MoveLike, P PositionLike[U, P]] struct {
	VersusArenaStats

	p1Name  string
	p2Name  string
	p1      AgentFactory[U, P]
	p2      AgentFactory[U, P]
	newGame func() P
	workers int
}

// NewVersusArena sets up an arena between two agent configurations,
// 'newGame' produces the starting position for every game.
func NewVersusArena[U minimax.MoveLike, P PositionLike[U, P]](
	p1Name string, p1 AgentFactory[U, P],
	p2Name string, p2 AgentFactory[U, P],
	newGame func() P,
) *VersusArena[U, P] {
	return &VersusArena[U, P]{
		p1Name:  p1Name,
		p2Name:  p2Name,
		p1:      p1,
		p2:      p2,
		newGame: newGame,
		workers: 1,
	}
}

// Set the number of games played concurrently. The search itself stays
// single threaded, parallelism here is across independent games only.
func (va *VersusArena[U, P]) SetWorkers(workers int) *VersusArena[U, P] {
	va.workers = max(1, workers)
	return va
}

// Run plays 'games' games, alternating which agent makes the opening move,
// and blocks until all of them finish or the context is cancelled.
func (va *VersusArena[U, P]) Run(ctx context.Context, games int) (VersusSummaryInfo, error) {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(va.workers)

	for i := 0; i < games; i++ {
		p1First := i%2 == 0
		group.Go(func() error {
			return va.playGame(ctx, p1First)
		})
	}

	err := group.Wait()
	return va.Summary(), err
}

func (va *VersusArena[U, P]) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          va.workers,
		P1Name:           va.p1Name,
		P2Name:           va.p2Name,
	}
}

func (va *VersusArena[U, P]) playGame(ctx context.Context, p1First bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	first, second := va.p1(true), va.p2(false)
	if !p1First {
		first, second = va.p2(true), va.p1(false)
	}

	gamePos := va.newGame()
	moveCount := 0

	for !gamePos.IsTerminated() {
		if err := ctx.Err(); err != nil {
			return err
		}

		current := first
		if moveCount%2 == 1 {
			current = second
		}

		move, ok := current.ChooseMove(gamePos)
		if !ok {
			// Stalemated position the game rules did not flag as
			// terminated, score it neutrally
			atomic.AddUint32(&va.draws, 1)
			return nil
		}

		gamePos.MakeMove(move)
		moveCount++
	}

	va.record(computeOutcome[U](gamePos, moveCount), p1First)
	return nil
}

func (va *VersusArena[U, P]) record(outcome GameOutcome, p1First bool) {
	if !outcome.IsDraw {
		if outcome.FirstPlayerWon {
			atomic.AddUint32(&va.firstToMoveWins, 1)
		} else {
			atomic.AddUint32(&va.secondToMoveWins, 1)
		}
	}

	switch toAgentResult(outcome, p1First) {
	case VersusPl1Win:
		atomic.AddUint32(&va.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&va.p2Wins, 1)
	default:
		atomic.AddUint32(&va.draws, 1)
	}
}
