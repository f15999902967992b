package board

import "github.com/komainu-shogi/shogicore/pkg/shogi/bitboard"

// Offset is a fixed (row, col) leap, used by Pawn/Knight/Silver/Gold-like/King
// moves.
type Offset struct{ DR, DC int }

// Direction is a unit step repeated until blocked, used by sliding pieces.
type Direction struct{ DR, DC int }

// PawnOffsets returns the single-step forward offset for a Pawn of color c.
func PawnOffsets(c Color) []Offset {
	return []Offset{{c.Forward(), 0}}
}

// KnightOffsets returns the two forward knight-jump offsets for color c.
func KnightOffsets(c Color) []Offset {
	f := c.Forward()
	return []Offset{{2 * f, 1}, {2 * f, -1}}
}

// SilverOffsets returns the five Silver-general step offsets for color c:
// one step forward, forward-diagonal, or backward-diagonal.
func SilverOffsets(c Color) []Offset {
	f := c.Forward()
	return []Offset{{f, -1}, {f, 0}, {f, 1}, {-f, -1}, {-f, 1}}
}

// GoldOffsets returns the six Gold-general step offsets for color c: one
// step forward, forward-diagonal, sideways, or straight back. Shared by
// Gold and the four "promoted minor" piece types.
func GoldOffsets(c Color) []Offset {
	f := c.Forward()
	return []Offset{{f, -1}, {f, 0}, {f, 1}, {0, -1}, {0, 1}, {-f, 0}}
}

// KingOffsets returns the eight one-step King offsets, color-independent.
func KingOffsets() []Offset {
	return []Offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
}

// LanceDirections returns the single forward sliding direction for color c.
func LanceDirections(c Color) []Direction {
	return []Direction{{c.Forward(), 0}}
}

// RookDirections returns the four orthogonal sliding directions.
func RookDirections() []Direction {
	return []Direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
}

// BishopDirections returns the four diagonal sliding directions.
func BishopDirections() []Direction {
	return []Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
}

// goldLikeTypes are the piece types that move exactly like a Gold general.
var goldLikeTypes = []PieceType{Gold, PromotedPawn, PromotedLance, PromotedKnight, PromotedSilver}

func inBounds(row, col int) bool {
	return row >= 0 && row < int(NumRanks) && col >= 0 && col < int(NumFiles)
}

// step returns sq shifted by (dr, dc), and whether the result is on-board.
func step(sq Square, dr, dc int) (Square, bool) {
	row, col := sq.Row()+dr, sq.Col()+dc
	if !inBounds(row, col) {
		return 0, false
	}
	return NewSquare(row, col), true
}

// LeaperTargets returns the raw bound-filtered destination squares for a
// leaper at sq with the given offsets. Friendly-piece filtering is the
// caller's responsibility (the move generator filters for move generation;
// AttackersTo does not need to, since it tests bitboard membership instead).
func (b *Board) LeaperTargets(sq Square, offsets []Offset) bitboard.Bitboard {
	var bb bitboard.Bitboard
	for _, o := range offsets {
		if target, ok := step(sq, o.DR, o.DC); ok {
			bb = bb.Set(int(target))
		}
	}
	return bb
}

// RayAttacks walks from sq in direction (dr, dc), returning every empty
// square traversed plus the first occupied square encountered (inclusive).
// This is the "trace each direction cell-by-cell; include the first
// blocker" contract shared by Lance, Rook, Bishop, Dragon, and Horse.
func (b *Board) RayAttacks(sq Square, dr, dc int) bitboard.Bitboard {
	var bb bitboard.Bitboard
	cur := sq
	for {
		next, ok := step(cur, dr, dc)
		if !ok {
			break
		}
		bb = bb.Set(int(next))
		if b.IsOccupied(next) {
			break
		}
		cur = next
	}
	return bb
}

// AttacksFrom returns the pseudo-attack set for a piece of the given color
// and type sitting at sq: every square it could move to or capture on,
// ignoring whose king would be left in check and without filtering out
// friendly-occupied destinations (the move generator does that).
func (b *Board) AttacksFrom(sq Square, c Color, p PieceType) bitboard.Bitboard {
	switch {
	case p == Pawn:
		return b.LeaperTargets(sq, PawnOffsets(c))
	case p == Knight:
		return b.LeaperTargets(sq, KnightOffsets(c))
	case p == Silver:
		return b.LeaperTargets(sq, SilverOffsets(c))
	case p == King:
		return b.LeaperTargets(sq, KingOffsets())
	case p.IsGoldLike():
		return b.LeaperTargets(sq, GoldOffsets(c))
	case p == Lance:
		return b.rayUnion(sq, LanceDirections(c))
	case p == Rook:
		return b.rayUnion(sq, RookDirections())
	case p == Bishop:
		return b.rayUnion(sq, BishopDirections())
	case p == PromotedRook:
		return b.rayUnion(sq, RookDirections()).Or(b.LeaperTargets(sq, KingOffsets()))
	case p == PromotedBishop:
		return b.rayUnion(sq, BishopDirections()).Or(b.LeaperTargets(sq, KingOffsets()))
	default:
		return bitboard.Empty
	}
}

func (b *Board) rayUnion(sq Square, dirs []Direction) bitboard.Bitboard {
	var bb bitboard.Bitboard
	for _, d := range dirs {
		bb = bb.Or(b.RayAttacks(sq, d.DR, d.DC))
	}
	return bb
}

// AttackersTo returns the squares of color by's pieces that attack sq. It is
// the basis of check detection, SEE attacker enumeration, and pin/skewer
// detection.
func (b *Board) AttackersTo(sq Square, by Color) bitboard.Bitboard {
	var attackers bitboard.Bitboard

	addLeaper := func(p PieceType, offsets []Offset) {
		bb := b.Piece(by, p)
		if bb.IsEmpty() {
			return
		}
		for _, o := range offsets {
			if origin, ok := step(sq, -o.DR, -o.DC); ok && bb.IsSet(int(origin)) {
				attackers = attackers.Set(int(origin))
			}
		}
	}
	addSlider := func(p PieceType, dirs []Direction) {
		bb := b.Piece(by, p)
		if bb.IsEmpty() {
			return
		}
		for _, d := range dirs {
			attackers = attackers.Or(b.RayAttacks(sq, d.DR, d.DC).And(bb))
		}
	}

	addLeaper(Pawn, PawnOffsets(by))
	addLeaper(Knight, KnightOffsets(by))
	addLeaper(Silver, SilverOffsets(by))
	addLeaper(King, KingOffsets())
	for _, gt := range goldLikeTypes {
		addLeaper(gt, GoldOffsets(by))
	}

	// A lance attacks along its forward direction, so its origin lies the
	// opposite way from sq.
	addSlider(Lance, []Direction{{-by.Forward(), 0}})
	addSlider(Rook, RookDirections())
	addSlider(Bishop, BishopDirections())
	addSlider(PromotedRook, RookDirections())
	addSlider(PromotedBishop, BishopDirections())
	addLeaper(PromotedRook, KingOffsets())
	addLeaper(PromotedBishop, KingOffsets())

	return attackers
}
