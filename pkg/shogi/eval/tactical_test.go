package eval_test

import (
	"context"
	"testing"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/eval"
	"github.com/stretchr/testify/assert"
)

func TestTacticalForkDetection(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 4))
	// A Black knight forking two White pieces.
	b.PlacePiece(board.Black, board.Knight, board.NewSquare(4, 4))
	b.PlacePiece(board.White, board.Rook, board.NewSquare(2, 3))
	b.PlacePiece(board.White, board.Gold, board.NewSquare(2, 5))

	var hands [board.NumColors]board.Hand
	te := eval.NewTactical()
	te.Config = eval.Config{EnableForks: true}

	score := te.Evaluate(context.Background(), b, hands, board.Black, 0)
	assert.Positive(t, score.MG)
}

func TestTacticalPinPenalty(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 4))
	b.PlacePiece(board.Black, board.Silver, board.NewSquare(5, 4))
	b.PlacePiece(board.White, board.Rook, board.NewSquare(2, 4))

	var hands [board.NumColors]board.Hand
	te := eval.NewTactical()
	te.Config = eval.Config{EnablePins: true}

	score := te.Evaluate(context.Background(), b, hands, board.Black, 0)
	assert.Negative(t, score.MG)
}

func TestTacticalBackRankThreat(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 4))
	b.PlacePiece(board.Black, board.Gold, board.NewSquare(7, 3))
	b.PlacePiece(board.Black, board.Gold, board.NewSquare(7, 4))
	b.PlacePiece(board.Black, board.Gold, board.NewSquare(7, 5))
	b.PlacePiece(board.Black, board.Silver, board.NewSquare(8, 3))
	b.PlacePiece(board.Black, board.Silver, board.NewSquare(8, 5))
	b.PlacePiece(board.White, board.Rook, board.NewSquare(8, 0))

	var hands [board.NumColors]board.Hand
	te := eval.NewTactical()
	te.Config = eval.Config{EnableBackRankThreats: true}

	score := te.Evaluate(context.Background(), b, hands, board.Black, 0)
	assert.Negative(t, score.MG)
}

func TestTacticalConfigDisablesAllDetectors(t *testing.T) {
	b := board.Initial()
	var hands [board.NumColors]board.Hand
	te := eval.NewTactical()
	te.Config = eval.Config{}

	score := te.Evaluate(context.Background(), b, hands, board.Black, 0)
	assert.Equal(t, eval.TaperedScore{}, score)
}
