// Package see computes the Static Exchange Evaluation of a capture: the net
// material result of playing out every legal recapture on a single square in
// ascending value order (§4.5), used by move ordering to separate "good" from
// "bad" captures without a full search.
package see

import (
	"github.com/komainu-shogi/shogicore/pkg/shogi/bitboard"
	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/eval"
)

// Calculate returns the static exchange evaluation, from the mover's
// perspective, of capturing the piece on to by moving the piece at from. The
// board b is never mutated: the exchange is played out on a scratch clone.
//
// A positive value means the full capture sequence nets material for the
// side making the first capture; a naked capture with no recapture returns
// exactly the captured piece's nominal value (§8's "SEE sign" property).
func Calculate(b *board.Board, from, to board.Square) int {
	attackerColor, attackerType, ok := b.Square(from)
	if !ok {
		return 0
	}
	_, capturedType, hasVictim := b.Square(to)
	if !hasVictim {
		return 0
	}

	work := b.Clone()
	work.RemovePiece(from)
	work.RemovePiece(to)
	work.PlacePiece(attackerColor, attackerType, to)

	// gain[i] is the material the side to move at step i stands to win
	// before accounting for what happens at step i+1; it is corrected by
	// the backward minimax pass below.
	gain := []int{eval.NominalValue(capturedType)}

	side := attackerColor.Opponent()
	onSquare := attackerType

	for {
		sq, piece, ok := leastValuableAttacker(work, to, side)
		if !ok {
			break
		}

		gain = append(gain, eval.NominalValue(onSquare)-gain[len(gain)-1])

		work.RemovePiece(sq)
		work.RemovePiece(to)
		work.PlacePiece(side, piece, to)

		onSquare = piece
		side = side.Opponent()
	}

	// A side down the exchange would simply decline to recapture, so each
	// step backpropagates the better of "capture" (gain[i]) and "stand
	// pat" (-gain[i+1], the following side's best result negated).
	for i := len(gain) - 2; i >= 0; i-- {
		v := gain[i+1]
		if -gain[i] > v {
			v = -gain[i]
		}
		gain[i] = -v
	}
	return gain[0]
}

// leastValuableAttacker finds the cheapest piece of color by attacking sq on
// board b, per the classic SEE ordering rule (§4.5: attackers are resolved in
// ascending value so a side never "wastes" its most valuable piece first).
func leastValuableAttacker(b *board.Board, sq board.Square, by board.Color) (board.Square, board.PieceType, bool) {
	attackers := b.AttackersTo(sq, by)
	if attackers.IsEmpty() {
		return 0, board.NoPieceType, false
	}

	var best board.Square
	bestType := board.NoPieceType
	bestValue := -1

	it := bitboard.Bits(attackers)
	for {
		idx, ok := it.Next()
		if !ok {
			break
		}
		s := board.Square(idx)
		_, p, _ := b.Square(s)
		v := eval.NominalValue(p)
		if bestValue == -1 || v < bestValue {
			bestValue = v
			best = s
			bestType = p
		}
	}
	return best, bestType, true
}

// IsGoodCapture reports whether the capture's SEE is non-negative -- the
// threshold move ordering uses to sort captures ahead of quiet moves
// (§4.5's "separate good captures from bad captures" role).
func IsGoodCapture(b *board.Board, from, to board.Square) bool {
	return Calculate(b, from, to) >= 0
}
