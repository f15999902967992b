package eval_test

import (
	"testing"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/eval"
	"github.com/stretchr/testify/assert"
)

func TestPhaseAtInitialPosition(t *testing.T) {
	assert.Equal(t, eval.MaxPhase, eval.CalculateGamePhase(board.Initial()))
}

func TestPhaseAtBareBoard(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 4))

	assert.Equal(t, 0, eval.CalculateGamePhase(b))
}

func TestPhaseIgnoresPawns(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 4))
	for col := 0; col < 9; col++ {
		b.PlacePiece(board.Black, board.Pawn, board.NewSquare(6, col))
	}

	assert.Equal(t, 0, eval.CalculateGamePhase(b))
}

func TestPhaseClampsAtMax(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 4))
	for col := 0; col < 9; col++ {
		b.PlacePiece(board.Black, board.Rook, board.NewSquare(7, col))
	}
	b.PlacePiece(board.Black, board.Rook, board.NewSquare(5, 0))
	b.PlacePiece(board.Black, board.Rook, board.NewSquare(5, 1))

	// 11 rooks * weight 3 = 33, scaled past MaxPhase -- must clamp, not overflow.
	assert.Equal(t, eval.MaxPhase, eval.CalculateGamePhase(b))
}
