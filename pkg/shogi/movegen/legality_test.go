package movegen_test

import (
	"testing"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/movegen"
	"github.com/stretchr/testify/assert"
)

func TestLegalMovesFiltersSelfCheck(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.Black, board.Silver, board.NewSquare(7, 4)) // pinned, shielding from rook below
	b.PlacePiece(board.White, board.Rook, board.NewSquare(0, 4))

	pos := movegen.Position{Board: b, Turn: board.Black}

	for _, mv := range movegen.LegalMoves(pos) {
		if mv.From == board.NewSquare(7, 4) {
			assert.Equal(t, board.NewSquare(6, 4).Col(), mv.To.Col(), "pinned silver can only move along the pin line")
		}
	}
}

func TestLegalMovesKingMustEscapeCheck(t *testing.T) {
	b := board.Empty()
	king := board.NewSquare(8, 4)
	b.PlacePiece(board.Black, board.King, king)
	b.PlacePiece(board.White, board.Rook, board.NewSquare(0, 4))

	pos := movegen.Position{Board: b, Turn: board.Black}
	moves := movegen.LegalMoves(pos)

	assert.NotEmpty(t, moves)
	for _, mv := range moves {
		assert.Equal(t, board.King, mv.PieceType)
		assert.NotEqual(t, 4, mv.To.Col(), "moving the king within the rook's file stays in check")
	}
}

func TestIsCheckmateKingRookVsLoneKing(t *testing.T) {
	// Corner mate: the rook checks down the file from a safe distance, and
	// the gold (two squares away, uncapturable by the king) covers both of
	// the king's two remaining escape squares.
	b := board.Empty()
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 0))
	b.PlacePiece(board.Black, board.Rook, board.NewSquare(8, 0))
	b.PlacePiece(board.Black, board.Gold, board.NewSquare(1, 2))

	pos := movegen.Position{Board: b, Turn: board.White}
	assert.True(t, movegen.IsCheckmate(pos))
	assert.False(t, movegen.IsStalemate(pos))
}

func TestIsStalemateEmptyHandNoLegalMoveNotInCheck(t *testing.T) {
	// A lone White king in the corner, not currently in check (each of the
	// three Black knights blocks its own defender's ray), but every one of
	// its three possible moves captures a defended knight and walks into
	// check.
	b := board.Empty()
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 0))
	b.PlacePiece(board.Black, board.Knight, board.NewSquare(0, 1))
	b.PlacePiece(board.Black, board.Knight, board.NewSquare(1, 0))
	b.PlacePiece(board.Black, board.Knight, board.NewSquare(1, 1))
	b.PlacePiece(board.Black, board.Rook, board.NewSquare(0, 8))   // defends (0,1) along rank 0
	b.PlacePiece(board.Black, board.Rook, board.NewSquare(8, 0))   // defends (1,0) along file 0
	b.PlacePiece(board.Black, board.Bishop, board.NewSquare(8, 8)) // defends (1,1) along the diagonal

	pos := movegen.Position{Board: b, Turn: board.White}
	assert.False(t, movegen.IsCheckmate(pos))
	assert.True(t, movegen.IsStalemate(pos))
}

func TestLegalMovesIncludesLegalDrop(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 4))

	var hands [board.NumColors]board.Hand
	hands[board.Black] = board.NewHand().Add(board.Gold)

	pos := movegen.Position{Board: b, Hands: hands, Turn: board.Black}
	moves := movegen.LegalMoves(pos)

	found := false
	for _, mv := range moves {
		if mv.IsDrop && mv.PieceType == board.Gold {
			found = true
		}
	}
	assert.True(t, found)
}
