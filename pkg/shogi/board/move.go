package board

import "fmt"

// Move represents a not-necessarily-legal shogi move: either a board move
// (piece slides/steps from one square to another) or a drop (a piece from
// hand placed on an empty square). Value semantics; immutable once built.
type Move struct {
	IsDrop bool

	// From is the origin square for a board move; meaningless if IsDrop.
	From Square
	To   Square

	// PieceType is the type of the moving piece before any promotion.
	PieceType PieceType
	Color     Color

	IsCapture   bool
	IsPromotion bool

	// Captured is the unpromoted form of the captured piece, or
	// NoPieceType if IsCapture is false.
	Captured PieceType
}

// NewBoardMove builds a non-drop move.
func NewBoardMove(c Color, from, to Square, p PieceType) Move {
	return Move{From: from, To: to, PieceType: p, Color: c}
}

// NewDrop builds a drop move. piece must be a basic piece type.
func NewDrop(c Color, to Square, p PieceType) Move {
	return Move{IsDrop: true, To: to, PieceType: p, Color: c}
}

// WithCapture returns m with capture metadata attached.
func (m Move) WithCapture(captured PieceType) Move {
	m.IsCapture = true
	m.Captured = captured.Unpromote()
	return m
}

// WithPromotion returns m flagged as a promoting move.
func (m Move) WithPromotion() Move {
	m.IsPromotion = true
	return m
}

// ResultingPieceType is the piece type that will occupy To after the move is
// applied.
func (m Move) ResultingPieceType() PieceType {
	if m.IsPromotion {
		if promoted, ok := m.PieceType.Promote(); ok {
			return promoted
		}
	}
	return m.PieceType
}

// Equals reports whether two moves describe the same action.
func (m Move) Equals(o Move) bool {
	return m.IsDrop == o.IsDrop && m.From == o.From && m.To == o.To &&
		m.PieceType == o.PieceType && m.Color == o.Color && m.IsPromotion == o.IsPromotion
}

func (m Move) String() string {
	if m.IsDrop {
		return fmt.Sprintf("%v*%v", m.PieceType, m.To)
	}
	promo := ""
	if m.IsPromotion {
		promo = "+"
	}
	return fmt.Sprintf("%v%v-%v%v", m.PieceType, m.From, m.To, promo)
}
