package tablebase

import (
	"context"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/movegen"
)

// step shifts sq by (dr, dc), reporting false if the result leaves the
// board.
func step(sq board.Square, dr, dc int) (board.Square, bool) {
	row, col := sq.Row()+dr, sq.Col()+dc
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return 0, false
	}
	return board.NewSquare(row, col), true
}

// escapeSquareCount returns how many of king's eight neighboring squares are
// neither occupied by its own side nor attacked by the opposing color: the
// squares it could flee to this instant.
func escapeSquareCount(b *board.Board, king board.Square, c board.Color) int {
	opp := c.Opponent()
	count := 0
	for _, o := range board.KingOffsets() {
		sq, ok := step(king, o.DR, o.DC)
		if !ok {
			continue
		}
		if b.IsOccupiedBy(sq, c) {
			continue
		}
		if b.AttackersTo(sq, opp).PopCount() > 0 {
			continue
		}
		count++
	}
	return count
}

// scoreCandidateMove heuristically ranks mv for the side to move, grounded
// on the reference solvers' four weighted factors: closing the distance
// between the kings, coordinating the moved piece with the opposing king,
// restricting the opposing king's mobility, and landing on a key square
// adjacent to it.
func scoreCandidateMove(pos movegen.Position, mv board.Move) int {
	mover := mv.Color
	opp := mover.Opponent()

	beforeOppKing := pos.Board.KingSquare(opp)
	beforeMoverKing := pos.Board.KingSquare(mover)
	beforeKingDist := manhattan(beforeMoverKing, beforeOppKing)
	beforeEscapes := escapeSquareCount(pos.Board, beforeOppKing, opp)

	child := applyMove(pos, mv)
	afterOppKing := child.Board.KingSquare(opp)
	afterMoverKing := child.Board.KingSquare(mover)

	score := 0
	if manhattan(afterMoverKing, afterOppKing) < beforeKingDist {
		score += 100
	}
	if mv.PieceType != board.King {
		score += 50 / (1 + manhattan(mv.To, afterOppKing))
	}
	if escapeSquareCount(child.Board, afterOppKing, opp) < beforeEscapes {
		score += 30
	}
	if manhattan(mv.To, afterOppKing) <= 1 {
		score += 40
	}
	return score
}

// heuristicDTM estimates distance-to-mate in plies from the distance
// between the two kings when an exhaustive search could not resolve the
// position within its budget, mirroring the reference solvers' fallback
// formula: roughly 1.3 plies per square of king distance, capped at
// maxSearchDepth.
func heuristicDTM(pos movegen.Position, attacker, defender board.Color) int {
	dist := manhattan(pos.Board.KingSquare(attacker), pos.Board.KingSquare(defender))
	dtm := (dist * 13) / 10
	if dtm < 1 {
		dtm = 1
	}
	if dtm > maxSearchDepth {
		dtm = maxSearchDepth
	}
	return dtm
}

// solve runs the shared search-then-heuristic pipeline every solver in this
// package uses once its material signature matches: try an exhaustive,
// bounded search first, and fall back to heuristic move selection and DTM
// estimation only if the search exhausts its budget unresolved.
func solve(ctx context.Context, pos movegen.Position, attacker, defender board.Color) (Result, bool) {
	if movegen.IsCheckmate(pos) {
		return Result{Outcome: Loss}, true
	}
	if movegen.IsStalemate(pos) {
		return Result{Outcome: Draw}, true
	}

	// Iterative deepening: each pass searches one ply deeper, all passes
	// sharing one node budget, so a win is reported from the shallowest depth
	// at which the search resolves it.
	nodes := 0
	var outcome Outcome
	var mv board.Move
	var hasMove, resolved bool
	var dtm int
	for depth := 1; depth <= maxSearchDepth && !resolved && nodes <= maxSearchNodes; depth++ {
		outcome, mv, hasMove, dtm, resolved = searchMate(pos, depth, &nodes)
	}
	if resolved {
		return Result{Outcome: outcome, Move: mv, HasMove: hasMove, DTM: dtm}, true
	}

	var best board.Move
	hasBest := false
	bestScore := 0
	for _, cand := range movegen.LegalMoves(pos) {
		s := scoreCandidateMove(pos, cand)
		if !hasBest || s > bestScore {
			best, bestScore, hasBest = cand, s, true
		}
	}

	heuristicOutcome := Win
	if pos.Turn != attacker {
		heuristicOutcome = Loss
	}

	return Result{
		Outcome: heuristicOutcome,
		Move:    best,
		HasMove: hasBest,
		DTM:     heuristicDTM(pos, attacker, defender),
	}, hasBest
}
