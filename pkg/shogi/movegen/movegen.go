package movegen

import (
	"github.com/komainu-shogi/shogicore/pkg/shogi/bitboard"
	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
)

// PseudoLegalBoardMoves returns every non-drop move available to color's
// pieces, including promoting and non-promoting variants, without regard to
// whether the mover's own king ends up in check.
func PseudoLegalBoardMoves(b *board.Board, c board.Color) []board.Move {
	var moves []board.Move

	for p := board.ZeroPieceType; p < board.NumPieceTypes; p++ {
		origins := b.Piece(c, p)
		it := bitboard.Bits(origins)
		for {
			from, ok := it.Next()
			if !ok {
				break
			}
			fromSq := board.Square(from)
			targets := b.AttacksFrom(fromSq, c, p).AndNot(b.ColorOccupied(c))

			tit := bitboard.Bits(targets)
			for {
				to, ok := tit.Next()
				if !ok {
					break
				}
				toSq := board.Square(to)
				moves = append(moves, boardMovesTo(b, c, p, fromSq, toSq)...)
			}
		}
	}

	return moves
}

// boardMovesTo builds the one or two move variants (non-promoting and/or
// promoting) for a piece of type p moving from fromSq to toSq.
func boardMovesTo(b *board.Board, c board.Color, p board.PieceType, fromSq, toSq board.Square) []board.Move {
	base := board.NewBoardMove(c, fromSq, toSq, p)

	if capColor, capPiece, ok := b.Square(toSq); ok && capColor != c {
		base = base.WithCapture(capPiece)
	}

	canPromote := p.CanPromote() && (fromSq.IsInPromotionZone(c) || toSq.IsInPromotionZone(c))
	mustPromote := canPromote && !hasAnyLegalSquareAfterMove(p, toSq, c)

	var moves []board.Move
	if !mustPromote {
		moves = append(moves, base)
	}
	if canPromote {
		moves = append(moves, base.WithPromotion())
	}
	return moves
}

// hasAnyLegalSquareAfterMove reports whether a piece of type p belonging to
// color c, sitting at sq without promoting, would retain at least one legal
// destination square -- i.e. whether leaving it unpromoted is even an option.
// Pawns and Lances stranded on the last rank, and Knights stranded on the
// last two ranks, have none, and so promotion becomes forced.
func hasAnyLegalSquareAfterMove(p board.PieceType, sq board.Square, c board.Color) bool {
	switch p {
	case board.Pawn, board.Lance:
		// IsBackRank(c) means c's own starting rank; what a stranded pawn or
		// lance actually runs out of road on is the far rank, i.e. the
		// opponent's back rank.
		return !sq.IsBackRank(c.Opponent())
	case board.Knight:
		return !sq.IsLastTwoRanks(c)
	default:
		return true
	}
}
