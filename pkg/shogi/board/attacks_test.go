package board_test

import (
	"testing"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/stretchr/testify/assert"
)

func TestAttacksFromPawn(t *testing.T) {
	b := board.Empty()
	sq := board.NewSquare(4, 4)

	attacks := b.AttacksFrom(sq, board.Black, board.Pawn)
	assert.True(t, attacks.IsSet(int(board.NewSquare(3, 4))))
	assert.Equal(t, 1, attacks.PopCount())

	attacks = b.AttacksFrom(sq, board.White, board.Pawn)
	assert.True(t, attacks.IsSet(int(board.NewSquare(5, 4))))
}

func TestAttacksFromKnightAsymmetric(t *testing.T) {
	b := board.Empty()
	sq := board.NewSquare(4, 4)

	// Black knights jump two ranks toward row 0 only, never backward.
	attacks := b.AttacksFrom(sq, board.Black, board.Knight)
	assert.True(t, attacks.IsSet(int(board.NewSquare(2, 3))))
	assert.True(t, attacks.IsSet(int(board.NewSquare(2, 5))))
	assert.Equal(t, 2, attacks.PopCount())

	// Edge of board: no legal jump squares.
	edge := board.NewSquare(0, 4)
	assert.True(t, b.AttacksFrom(edge, board.Black, board.Knight).IsEmpty())
}

func TestAttacksFromLanceSlidesAndStops(t *testing.T) {
	b := board.Empty()
	from := board.NewSquare(8, 4)
	b.PlacePiece(board.Black, board.Lance, from)
	b.PlacePiece(board.White, board.Pawn, board.NewSquare(3, 4))

	attacks := b.AttacksFrom(from, board.Black, board.Lance)

	for row := 7; row >= 3; row-- {
		assert.True(t, attacks.IsSet(int(board.NewSquare(row, 4))), "row %d should be attacked", row)
	}
	// Blocked beyond the first piece encountered.
	assert.False(t, attacks.IsSet(int(board.NewSquare(2, 4))))
}

func TestAttacksFromRookStopsAtFriendly(t *testing.T) {
	b := board.Empty()
	from := board.NewSquare(4, 4)
	b.PlacePiece(board.Black, board.Rook, from)
	b.PlacePiece(board.Black, board.Pawn, board.NewSquare(4, 6))

	attacks := b.AttacksFrom(from, board.Black, board.Rook)

	assert.True(t, attacks.IsSet(int(board.NewSquare(4, 5))))
	assert.True(t, attacks.IsSet(int(board.NewSquare(4, 6)))) // includes the blocker itself
	assert.False(t, attacks.IsSet(int(board.NewSquare(4, 7))))
}

func TestAttacksFromPromotedRookAddsKingStep(t *testing.T) {
	b := board.Empty()
	from := board.NewSquare(4, 4)

	attacks := b.AttacksFrom(from, board.Black, board.PromotedRook)

	assert.True(t, attacks.IsSet(int(board.NewSquare(3, 3)))) // diagonal, rook can't reach alone
	assert.True(t, attacks.IsSet(int(board.NewSquare(0, 4)))) // orthogonal slide
}

func TestAttackersToSingleSlider(t *testing.T) {
	b := board.Empty()
	king := board.NewSquare(8, 4)
	b.PlacePiece(board.Black, board.King, king)
	b.PlacePiece(board.White, board.Rook, board.NewSquare(0, 4))

	attackers := b.AttackersTo(king, board.White)
	assert.Equal(t, 1, attackers.PopCount())
	assert.True(t, attackers.IsSet(int(board.NewSquare(0, 4))))

	assert.True(t, b.AttackersTo(king, board.Black).IsEmpty())
}

func TestAttackersToMultipleAttackers(t *testing.T) {
	b := board.Empty()
	target := board.NewSquare(4, 4)
	b.PlacePiece(board.White, board.Rook, board.NewSquare(4, 0))
	b.PlacePiece(board.White, board.Bishop, board.NewSquare(0, 0))
	b.PlacePiece(board.White, board.Gold, board.NewSquare(5, 4))

	attackers := b.AttackersTo(target, board.White)
	assert.True(t, attackers.IsSet(int(board.NewSquare(4, 0))))
	assert.True(t, attackers.IsSet(int(board.NewSquare(0, 0))))
	assert.True(t, attackers.IsSet(int(board.NewSquare(5, 4))))
	assert.Equal(t, 3, attackers.PopCount())
}

func TestAttackersToIgnoresBlockedSlider(t *testing.T) {
	b := board.Empty()
	target := board.NewSquare(4, 4)
	b.PlacePiece(board.White, board.Rook, board.NewSquare(4, 0))
	b.PlacePiece(board.White, board.Pawn, board.NewSquare(4, 2)) // blocks the rook's own ray

	attackers := b.AttackersTo(target, board.White)
	assert.False(t, attackers.IsSet(int(board.NewSquare(4, 0))))
}
