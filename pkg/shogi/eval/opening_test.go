package eval_test

import (
	"context"
	"testing"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/eval"
	"github.com/stretchr/testify/assert"
)

func TestOpeningInitialPositionIsSymmetric(t *testing.T) {
	b := board.Initial()
	var hands [board.NumColors]board.Hand
	o := eval.NewOpening()

	black := o.Evaluate(context.Background(), b, hands, board.Black, 0)
	white := o.Evaluate(context.Background(), b, hands, board.White, 0)
	assert.Equal(t, black, white)
}

func TestOpeningDevelopmentRewardsOffBackRankMajors(t *testing.T) {
	b := board.Initial()
	// Move Black's rook off its back rank.
	b.RemovePiece(board.NewSquare(7, 7))
	b.PlacePiece(board.Black, board.Rook, board.NewSquare(5, 7))

	var hands [board.NumColors]board.Hand
	o := eval.NewOpening()
	o.Config = eval.OpeningConfig{EnableDevelopment: true}

	score := o.Evaluate(context.Background(), b, hands, board.Black, 1)
	assert.Positive(t, score.MG)
}

func TestOpeningFadesOutPastHorizon(t *testing.T) {
	b := board.Initial()
	b.RemovePiece(board.NewSquare(7, 7))
	b.PlacePiece(board.Black, board.Rook, board.NewSquare(5, 7))

	var hands [board.NumColors]board.Hand
	o := eval.NewOpening()
	o.Config = eval.OpeningConfig{EnableDevelopment: true}

	early := o.Evaluate(context.Background(), b, hands, board.Black, 5)
	late := o.Evaluate(context.Background(), b, hands, board.Black, 60)
	assert.Equal(t, eval.TaperedScore{}, late)
	assert.NotEqual(t, eval.TaperedScore{}, early)
}

func TestOpeningKingSortiePenalty(t *testing.T) {
	b := board.Initial()
	b.RemovePiece(board.NewSquare(8, 4))
	b.PlacePiece(board.Black, board.King, board.NewSquare(6, 4))

	var hands [board.NumColors]board.Hand
	o := eval.NewOpening()
	o.Config = eval.OpeningConfig{EnablePenalties: true}

	score := o.Evaluate(context.Background(), b, hands, board.Black, 5)
	assert.Negative(t, score.MG)
}
