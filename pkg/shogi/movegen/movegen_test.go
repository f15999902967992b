package movegen_test

import (
	"testing"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/movegen"
	"github.com/stretchr/testify/assert"
)

func containsMove(moves []board.Move, mv board.Move) bool {
	for _, m := range moves {
		if m.Equals(mv) {
			return true
		}
	}
	return false
}

func TestPseudoLegalBoardMovesPawnAdvance(t *testing.T) {
	b := board.Empty()
	from := board.NewSquare(6, 4)
	b.PlacePiece(board.Black, board.Pawn, from)

	moves := movegen.PseudoLegalBoardMoves(b, board.Black)
	assert.True(t, containsMove(moves, board.NewBoardMove(board.Black, from, board.NewSquare(5, 4), board.Pawn)))
	assert.Len(t, moves, 1)
}

func TestPseudoLegalBoardMovesForcedPromotion(t *testing.T) {
	b := board.Empty()
	from := board.NewSquare(1, 4)
	b.PlacePiece(board.Black, board.Pawn, from)

	moves := movegen.PseudoLegalBoardMoves(b, board.Black)
	// A pawn moving to the last rank has no non-promoting option.
	assert.Len(t, moves, 1)
	assert.True(t, moves[0].IsPromotion)
}

func TestPseudoLegalBoardMovesOptionalPromotion(t *testing.T) {
	b := board.Empty()
	// One step above Black's promotion zone boundary: moving into row 2
	// (inside the zone) offers a choice to promote; retreating diagonally to
	// row 4 does not.
	from := board.NewSquare(3, 4)
	b.PlacePiece(board.Black, board.Silver, from)

	moves := movegen.PseudoLegalBoardMoves(b, board.Black)

	var sawPromotingIntoZone, sawNonPromotingOutOfZone bool
	for _, m := range moves {
		if m.To.Row() == 2 && m.IsPromotion {
			sawPromotingIntoZone = true
		}
		if m.To.Row() == 4 && !m.IsPromotion {
			sawNonPromotingOutOfZone = true
		}
	}
	assert.True(t, sawPromotingIntoZone)
	assert.True(t, sawNonPromotingOutOfZone)

	for _, m := range moves {
		if m.To.Row() == 4 {
			assert.False(t, m.IsPromotion, "move staying outside the promotion zone cannot promote")
		}
	}
}

func TestPseudoLegalBoardMovesExcludeFriendlyCaptures(t *testing.T) {
	b := board.Empty()
	from := board.NewSquare(4, 4)
	b.PlacePiece(board.Black, board.Rook, from)
	b.PlacePiece(board.Black, board.Pawn, board.NewSquare(4, 6))

	moves := movegen.PseudoLegalBoardMoves(b, board.Black)
	assert.False(t, containsMove(moves, board.NewBoardMove(board.Black, from, board.NewSquare(4, 6), board.Rook)))
}

func TestPseudoLegalBoardMovesMarksCapture(t *testing.T) {
	b := board.Empty()
	from := board.NewSquare(4, 4)
	to := board.NewSquare(4, 6)
	b.PlacePiece(board.Black, board.Rook, from)
	b.PlacePiece(board.White, board.PromotedBishop, to)

	moves := movegen.PseudoLegalBoardMoves(b, board.Black)
	for _, m := range moves {
		if m.To == to && !m.IsPromotion {
			assert.True(t, m.IsCapture)
			assert.Equal(t, board.Bishop, m.Captured)
			return
		}
	}
	t.Fatal("expected capture move to To not found")
}
