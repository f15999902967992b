package board

import (
	"strings"

	"github.com/komainu-shogi/shogicore/pkg/shogi/bitboard"
)

// Board is the mutable position state: per-(color, piece type) occupancy
// bitboards, aggregate occupancy, and a dense square-to-piece lookup. Value
// semantics: Board is a plain struct and Clone returns an independent copy,
// matching the teacher's freely-cloneable Position design.
type Board struct {
	pieces [NumColors][NumPieceTypes]bitboard.Bitboard

	occupied      bitboard.Bitboard
	colorOccupied [NumColors]bitboard.Bitboard

	squares [NumSquares]cell
}

type cell struct {
	occupied  bool
	color     Color
	pieceType PieceType
}

// Empty returns a board with no pieces placed.
func Empty() *Board {
	return &Board{}
}

// Initial returns the standard shogi starting position.
func Initial() *Board {
	b := Empty()
	place := func(c Color, row int, cols []int, p PieceType) {
		for _, col := range cols {
			b.PlacePiece(c, p, NewSquare(row, col))
		}
	}

	// White (Gote) camp, rows 0-2.
	place(White, 0, []int{0, 8}, Lance)
	place(White, 0, []int{1, 7}, Knight)
	place(White, 0, []int{2, 6}, Silver)
	place(White, 0, []int{3, 5}, Gold)
	place(White, 0, []int{4}, King)
	place(White, 1, []int{1}, Rook)
	place(White, 1, []int{7}, Bishop)
	place(White, 2, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Pawn)

	// Black (Sente) camp, rows 6-8, mirrored.
	place(Black, 8, []int{0, 8}, Lance)
	place(Black, 8, []int{1, 7}, Knight)
	place(Black, 8, []int{2, 6}, Silver)
	place(Black, 8, []int{3, 5}, Gold)
	place(Black, 8, []int{4}, King)
	place(Black, 7, []int{7}, Rook)
	place(Black, 7, []int{1}, Bishop)
	place(Black, 6, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Pawn)

	return b
}

// Clone returns an independent copy of b.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Piece returns the bitboard of all pieces of the given color and type.
func (b *Board) Piece(c Color, p PieceType) bitboard.Bitboard {
	return b.pieces[c][p]
}

// Occupied returns the aggregate occupancy of all pieces.
func (b *Board) Occupied() bitboard.Bitboard {
	return b.occupied
}

// ColorOccupied returns the aggregate occupancy of color c's pieces.
func (b *Board) ColorOccupied(c Color) bitboard.Bitboard {
	return b.colorOccupied[c]
}

// Square returns the piece at sq, if any.
func (b *Board) Square(sq Square) (Color, PieceType, bool) {
	cl := b.squares[sq]
	return cl.color, cl.pieceType, cl.occupied
}

// IsOccupied reports whether any piece sits on sq.
func (b *Board) IsOccupied(sq Square) bool {
	return b.squares[sq].occupied
}

// IsOccupiedBy reports whether a piece of the given color sits on sq.
func (b *Board) IsOccupiedBy(sq Square, c Color) bool {
	cl := b.squares[sq]
	return cl.occupied && cl.color == c
}

// KingSquare returns the square of color c's King. Panics if c has no King,
// which is a caller-precondition violation (every reachable position has
// exactly one King per side).
func (b *Board) KingSquare(c Color) Square {
	it := bitboard.Bits(b.pieces[c][King])
	sq, ok := it.Next()
	if !ok {
		panic("board: no king on board")
	}
	return Square(sq)
}

// PlacePiece places a piece of the given color and type at pos. Precondition:
// pos is unoccupied; violating it overwrites the previous occupant's
// bookkeeping and is a caller bug, matching the teacher's place_piece
// contract.
func (b *Board) PlacePiece(c Color, p PieceType, pos Square) {
	mask := bitboard.Mask(int(pos))
	b.pieces[c][p] = b.pieces[c][p].Or(mask)
	b.colorOccupied[c] = b.colorOccupied[c].Or(mask)
	b.occupied = b.occupied.Or(mask)
	b.squares[pos] = cell{occupied: true, color: c, pieceType: p}
}

// RemovePiece removes and returns the piece at pos, if any.
func (b *Board) RemovePiece(pos Square) (Color, PieceType, bool) {
	cl := b.squares[pos]
	if !cl.occupied {
		return 0, NoPieceType, false
	}

	mask := bitboard.Mask(int(pos))
	b.pieces[cl.color][cl.pieceType] = b.pieces[cl.color][cl.pieceType].AndNot(mask)
	b.colorOccupied[cl.color] = b.colorOccupied[cl.color].AndNot(mask)
	b.occupied = b.occupied.AndNot(mask)
	b.squares[pos] = cell{}

	return cl.color, cl.pieceType, true
}

// MakeMove applies mv in place and returns the captured (already-unpromoted)
// piece type, if any. A board move whose From square is empty silently
// no-ops, per the teacher's permissive make_move contract; the caller (move
// generator or search) is responsible for updating hands on captures and
// drops.
func (m Move) apply(b *Board) (PieceType, bool) {
	if m.IsDrop {
		b.PlacePiece(m.Color, m.PieceType, m.To)
		return NoPieceType, false
	}

	color, pieceType, ok := b.Square(m.From)
	if !ok || color != m.Color {
		return NoPieceType, false // no-op: nothing to move
	}
	b.RemovePiece(m.From)

	var captured PieceType
	var hadCapture bool
	if _, capturedType, ok := b.Square(m.To); ok {
		b.RemovePiece(m.To)
		captured = capturedType.Unpromote()
		hadCapture = true
	}

	resulting := pieceType
	if m.IsPromotion {
		if promoted, ok := pieceType.Promote(); ok {
			resulting = promoted
		}
	}
	b.PlacePiece(m.Color, resulting, m.To)

	return captured, hadCapture
}

// MakeMove applies mv to b in place. See Move.apply for semantics.
func (b *Board) MakeMove(mv Move) (PieceType, bool) {
	return mv.apply(b)
}

// IsKingInCheck reports whether color's King is attacked by any opposing
// piece. A color with no King on the board is reported as not in check --
// this is a hot-path query reached during move generation (§7's no-panic rule
// for the hot path), and unlike KingSquare it cannot assume every position it
// is asked about is a complete, reachable game position.
func (b *Board) IsKingInCheck(c Color) bool {
	if b.Piece(c, King).IsEmpty() {
		return false
	}
	return !b.AttackersTo(b.KingSquare(c), c.Opponent()).IsEmpty()
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < int(NumRanks); row++ {
		if row > 0 {
			sb.WriteRune('/')
		}
		for col := 0; col < int(NumFiles); col++ {
			c, p, ok := b.Square(NewSquare(row, col))
			if !ok {
				sb.WriteRune('.')
				continue
			}
			l, promoted := p.Letter()
			if c == White {
				l = l + ('a' - 'A')
			}
			if promoted {
				sb.WriteRune('+')
			}
			sb.WriteByte(l)
		}
	}
	return sb.String()
}
