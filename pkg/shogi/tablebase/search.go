package tablebase

import (
	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/movegen"
)

// maxSearchNodes bounds the total number of positions visited by searchMate
// across an entire call tree, so a wide-branching position degrades to an
// Unknown (and the caller's heuristic fallback) rather than running away.
const maxSearchNodes = 40000

func rank(o Outcome) int {
	switch o {
	case Win:
		return 2
	case Draw:
		return 1
	case Loss:
		return 0
	default:
		return -1
	}
}

// applyMove returns the Position reached by playing mv from pos, updating
// hands for captures and drops the way a search node-expansion step must.
func applyMove(pos movegen.Position, mv board.Move) movegen.Position {
	next := pos.Clone()
	captured, hadCapture := next.Board.MakeMove(mv)
	if hadCapture {
		next.Hands[mv.Color] = next.Hands[mv.Color].Add(captured)
	}
	if mv.IsDrop {
		next.Hands[mv.Color], _ = next.Hands[mv.Color].Remove(mv.PieceType)
	}
	next.Turn = mv.Color.Opponent()
	return next
}

// searchMate performs a depth- and node-bounded exhaustive search of pos,
// returning the outcome (from pos.Turn's perspective), its best move, and a
// distance-to-mate in plies. resolved is false if the budget ran out before
// every branch could be classified -- the caller should fall back to a
// heuristic DTM estimate in that case rather than trust the returned values.
func searchMate(pos movegen.Position, depthLeft int, nodes *int) (outcome Outcome, best board.Move, hasMove bool, dtm int, resolved bool) {
	if movegen.IsCheckmate(pos) {
		return Loss, board.Move{}, false, 0, true
	}
	if movegen.IsStalemate(pos) {
		return Draw, board.Move{}, false, 0, true
	}
	if depthLeft == 0 {
		return Unknown, board.Move{}, false, 0, false
	}

	*nodes++
	if *nodes > maxSearchNodes {
		return Unknown, board.Move{}, false, 0, false
	}

	moves := movegen.LegalMoves(pos)
	bestOutcome := Unknown
	allResolved := true

	for _, mv := range moves {
		child := applyMove(pos, mv)
		childOutcome, _, _, childDTM, childResolved := searchMate(child, depthLeft-1, nodes)
		if !childResolved {
			allResolved = false
			continue
		}

		var ourOutcome Outcome
		switch childOutcome {
		case Loss:
			ourOutcome = Win
		case Win:
			ourOutcome = Loss
		default:
			ourOutcome = Draw
		}
		ourDTM := childDTM + 1

		switch {
		case !hasMove:
			bestOutcome, best, dtm, hasMove = ourOutcome, mv, ourDTM, true
		case rank(ourOutcome) > rank(bestOutcome):
			bestOutcome, best, dtm = ourOutcome, mv, ourDTM
		case ourOutcome == bestOutcome && ourOutcome == Win && ourDTM < dtm:
			best, dtm = mv, ourDTM
		case ourOutcome == bestOutcome && ourOutcome == Loss && ourDTM > dtm:
			best, dtm = mv, ourDTM
		}
	}

	if bestOutcome == Win {
		return Win, best, true, dtm, true
	}
	if !allResolved {
		return Unknown, best, hasMove, 0, false
	}
	return bestOutcome, best, hasMove, dtm, true
}
