package board_test

import (
	"testing"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/stretchr/testify/assert"
)

func TestPlaceAndRemovePiece(t *testing.T) {
	b := board.Empty()
	sq := board.NewSquare(4, 4)

	b.PlacePiece(board.Black, board.Gold, sq)

	c, p, ok := b.Square(sq)
	assert.True(t, ok)
	assert.Equal(t, board.Black, c)
	assert.Equal(t, board.Gold, p)
	assert.True(t, b.IsOccupied(sq))
	assert.True(t, b.IsOccupiedBy(sq, board.Black))
	assert.False(t, b.IsOccupiedBy(sq, board.White))

	rc, rp, ok := b.RemovePiece(sq)
	assert.True(t, ok)
	assert.Equal(t, board.Black, rc)
	assert.Equal(t, board.Gold, rp)
	assert.False(t, b.IsOccupied(sq))

	_, _, ok = b.RemovePiece(sq)
	assert.False(t, ok)
}

func TestBitboardConsistency(t *testing.T) {
	b := board.Initial()

	// occupied == black_occupied | white_occupied, with no overlap.
	assert.True(t, b.ColorOccupied(board.Black).Or(b.ColorOccupied(board.White)).Equals(b.Occupied()))
	assert.True(t, b.ColorOccupied(board.Black).And(b.ColorOccupied(board.White)).IsEmpty())

	for c := board.ZeroColor; c < board.NumColors; c++ {
		var union2 = b.Piece(c, board.Pawn)
		for p := board.Lance; p < board.NumPieceTypes; p++ {
			union2 = union2.Or(b.Piece(c, p))
		}
		assert.True(t, union2.Equals(b.ColorOccupied(c)))
	}
}

func TestInitialPositionCounts(t *testing.T) {
	b := board.Initial()

	assert.Equal(t, 9, b.Piece(board.Black, board.Pawn).PopCount())
	assert.Equal(t, 1, b.Piece(board.Black, board.King).PopCount())
	assert.Equal(t, 1, b.Piece(board.Black, board.Rook).PopCount())
	assert.Equal(t, 1, b.Piece(board.Black, board.Bishop).PopCount())
	assert.Equal(t, 2, b.Piece(board.Black, board.Gold).PopCount())
	assert.Equal(t, 2, b.Piece(board.Black, board.Silver).PopCount())
	assert.Equal(t, 2, b.Piece(board.Black, board.Knight).PopCount())
	assert.Equal(t, 2, b.Piece(board.Black, board.Lance).PopCount())

	assert.Equal(t, 9, b.Piece(board.White, board.Pawn).PopCount())
	assert.Equal(t, 1, b.Piece(board.White, board.King).PopCount())
}

func TestMakeMoveBoard(t *testing.T) {
	b := board.Empty()
	from := board.NewSquare(6, 4)
	to := board.NewSquare(5, 4)
	b.PlacePiece(board.Black, board.Pawn, from)

	mv := board.NewBoardMove(board.Black, from, to, board.Pawn)
	captured, hadCapture := b.MakeMove(mv)
	assert.False(t, hadCapture)
	assert.Equal(t, board.NoPieceType, captured)

	assert.False(t, b.IsOccupied(from))
	c, p, ok := b.Square(to)
	assert.True(t, ok)
	assert.Equal(t, board.Black, c)
	assert.Equal(t, board.Pawn, p)
}

func TestMakeMoveCapturePromotion(t *testing.T) {
	b := board.Empty()
	from := board.NewSquare(3, 4)
	to := board.NewSquare(2, 4)
	b.PlacePiece(board.Black, board.Pawn, from)
	b.PlacePiece(board.White, board.PromotedPawn, to) // captured piece un-promotes

	mv := board.NewBoardMove(board.Black, from, to, board.Pawn).WithCapture(board.PromotedPawn).WithPromotion()
	captured, hadCapture := b.MakeMove(mv)

	assert.True(t, hadCapture)
	assert.Equal(t, board.Pawn, captured) // reverted to basic form

	c, p, ok := b.Square(to)
	assert.True(t, ok)
	assert.Equal(t, board.Black, c)
	assert.Equal(t, board.PromotedPawn, p)
}

func TestMakeMoveNoopOnEmptyFrom(t *testing.T) {
	b := board.Empty()
	mv := board.NewBoardMove(board.Black, board.NewSquare(0, 0), board.NewSquare(1, 0), board.Pawn)

	_, hadCapture := b.MakeMove(mv)
	assert.False(t, hadCapture)
	assert.False(t, b.IsOccupied(board.NewSquare(1, 0)))
}

func TestMakeMoveDrop(t *testing.T) {
	b := board.Empty()
	to := board.NewSquare(4, 4)
	mv := board.NewDrop(board.Black, to, board.Silver)

	b.MakeMove(mv)

	c, p, ok := b.Square(to)
	assert.True(t, ok)
	assert.Equal(t, board.Black, c)
	assert.Equal(t, board.Silver, p)
}

func TestIsKingInCheck(t *testing.T) {
	b := board.Empty()
	b.PlacePiece(board.Black, board.King, board.NewSquare(8, 4))
	b.PlacePiece(board.White, board.Rook, board.NewSquare(0, 4))

	assert.True(t, b.IsKingInCheck(board.Black))
	assert.False(t, b.IsKingInCheck(board.White))
}
