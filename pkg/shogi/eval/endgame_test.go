package eval_test

import (
	"context"
	"testing"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/komainu-shogi/shogicore/pkg/shogi/eval"
	"github.com/stretchr/testify/assert"
)

func TestEndgameKingActivityRewardsCentralizedKing(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(4, 4))
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 4))

	var hands [board.NumColors]board.Hand
	ee := eval.NewEndgame()
	ee.Config = eval.EndgameConfig{EnableKingActivity: true}

	score := ee.Evaluate(context.Background(), b, hands, board.Black, 80)
	assert.Positive(t, score.EG)
}

func TestEndgamePassedPawnBonusGrowsWithAdvancement(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 8))
	b.PlacePiece(board.Black, board.Pawn, board.NewSquare(3, 0))

	var hands [board.NumColors]board.Hand
	ee := eval.NewEndgame()
	ee.Config = eval.EndgameConfig{EnablePassedPawns: true}

	advanced := ee.Evaluate(context.Background(), b, hands, board.Black, 80)

	b2 := board.Empty()
	b2.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b2.PlacePiece(board.White, board.King, board.NewSquare(0, 8))
	b2.PlacePiece(board.Black, board.Pawn, board.NewSquare(6, 0))
	less := ee.Evaluate(context.Background(), b2, hands, board.Black, 80)

	assert.Greater(t, advanced.EG, less.EG)
}

func TestEndgamePassedPawnBlockedByEnemyPawn(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 8))
	b.PlacePiece(board.Black, board.Pawn, board.NewSquare(5, 0))
	b.PlacePiece(board.White, board.Pawn, board.NewSquare(2, 0))

	var hands [board.NumColors]board.Hand
	ee := eval.NewEndgame()
	ee.Config = eval.EndgameConfig{EnablePassedPawns: true}

	score := ee.Evaluate(context.Background(), b, hands, board.Black, 80)
	assert.Equal(t, eval.TaperedScore{}, score)
}

func TestEndgameDoubleRookCoordination(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 4))
	b.PlacePiece(board.Black, board.Rook, board.NewSquare(5, 0))
	b.PlacePiece(board.Black, board.Rook, board.NewSquare(5, 8))

	var hands [board.NumColors]board.Hand
	ee := eval.NewEndgame()
	ee.Config = eval.EndgameConfig{EnablePieceCoordination: true}

	score := ee.Evaluate(context.Background(), b, hands, board.Black, 80)
	assert.Positive(t, score.EG)
}

func TestEndgameBackRankMateThreatScoredForAttacker(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 0))
	b.PlacePiece(board.White, board.Silver, board.NewSquare(1, 0))
	b.PlacePiece(board.White, board.Silver, board.NewSquare(1, 1))
	b.PlacePiece(board.White, board.Silver, board.NewSquare(0, 1))
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 8))

	var hands [board.NumColors]board.Hand
	ee := eval.NewEndgame()
	ee.Config = eval.EndgameConfig{EnableMatingPatterns: true}

	score := ee.Evaluate(context.Background(), b, hands, board.Black, 80)
	assert.Positive(t, score.MG)
}

func TestEndgameMajorPieceActivityOnSeventhRank(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.White, board.King, board.NewSquare(0, 4))
	b.PlacePiece(board.Black, board.Rook, board.NewSquare(1, 0))

	var hands [board.NumColors]board.Hand
	ee := eval.NewEndgame()
	ee.Config = eval.EndgameConfig{EnableMajorPieceActivity: true}

	score := ee.Evaluate(context.Background(), b, hands, board.Black, 80)
	assert.Positive(t, score.MG)
	assert.Positive(t, score.EG)
}

func TestEndgameStatsCountEvaluations(t *testing.T) {
	b := board.Initial()
	var hands [board.NumColors]board.Hand
	ee := eval.NewEndgame()

	ee.Evaluate(context.Background(), b, hands, board.Black, 0)
	ee.Evaluate(context.Background(), b, hands, board.Black, 0)

	assert.Equal(t, uint64(2), ee.Stats.Evaluations)
}
