package movegen

import (
	"github.com/komainu-shogi/shogicore/pkg/shogi/bitboard"
	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
)

// PseudoLegalDrops returns every drop available to color c given its hand,
// enforcing the drop-specific restrictions beyond ordinary check-legality:
// nifu (two of a color's unpromoted pawns on one file), no-legal-square
// drops (pawn/lance on the last rank, knight on the last two ranks), and
// uchifuzume (a pawn drop that delivers immediate checkmate). Ordinary
// check-legality (the mover's own king not left in check) is still the
// caller's job, same as for board moves.
func PseudoLegalDrops(pos Position) []board.Move {
	var moves []board.Move
	c := pos.Turn
	b := pos.Board

	empty := b.Occupied().Not()

	for _, p := range board.BasicPieceTypes {
		if pos.Hands[c].Count(p) == 0 {
			continue
		}

		it := bitboard.Bits(empty)
		for {
			sq, ok := it.Next()
			if !ok {
				break
			}
			to := board.Square(sq)

			if !hasAnyLegalSquareAfterMove(p, to, c) {
				continue
			}
			if p == board.Pawn && isNifu(b, c, to) {
				continue
			}
			if p == board.Pawn && isUchifuzume(pos, to) {
				continue
			}
			moves = append(moves, board.NewDrop(c, to, p))
		}
	}

	return moves
}

// isNifu reports whether dropping an unpromoted pawn of color c on to's file
// would place a second such pawn on that file.
func isNifu(b *board.Board, c board.Color, to board.Square) bool {
	file := to.Col()
	pawns := b.Piece(c, board.Pawn)

	it := bitboard.Bits(pawns)
	for {
		sq, ok := it.Next()
		if !ok {
			return false
		}
		if board.Square(sq).Col() == file {
			return true
		}
	}
}

// isUchifuzume reports whether dropping a pawn of the side to move at to
// would deliver immediate checkmate to the opponent -- the one drop
// forbidden even though it would otherwise be a winning move.
func isUchifuzume(pos Position, to board.Square) bool {
	trial := pos.Clone()
	trial.Board.PlacePiece(trial.Turn, board.Pawn, to)
	opponent := trial.Turn.Opponent()

	next := Position{Board: trial.Board, Hands: trial.Hands, Turn: opponent}
	return IsCheckmate(next)
}
