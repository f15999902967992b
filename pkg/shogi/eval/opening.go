package eval

import (
	"context"

	"github.com/komainu-shogi/shogicore/pkg/shogi/bitboard"
	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
)

// openingHorizon is the approximate move count past which opening scoring
// fades out (§4.4.4: "active primarily when move_count ≤ ~15").
const openingHorizon = 15

// openingWeight linearly fades opening contributions to zero by move 30,
// rather than cutting them off sharply at the horizon -- a sharp cutoff
// would make the evaluator discontinuous across a single ply.
func openingWeight(moveCount int) float64 {
	if moveCount <= openingHorizon {
		return 1.0
	}
	fadeEnd := openingHorizon * 2
	if moveCount >= fadeEnd {
		return 0
	}
	return float64(fadeEnd-moveCount) / float64(fadeEnd-openingHorizon)
}

// OpeningConfig toggles the individual opening sub-scores.
type OpeningConfig struct {
	EnableDevelopment   bool
	EnableCenterControl bool
	EnableCastle        bool
	EnableTempo         bool
	EnablePenalties     bool
}

// DefaultOpeningConfig enables every sub-score.
func DefaultOpeningConfig() OpeningConfig {
	return OpeningConfig{true, true, true, true, true}
}

// Opening scores development, center control, castle formation, tempo, and
// opening penalties (§4.4.4). Every sub-score fades out past openingHorizon.
type Opening struct {
	Config OpeningConfig
}

// NewOpening builds an Opening evaluator with the default config.
func NewOpening() *Opening {
	return &Opening{Config: DefaultOpeningConfig()}
}

var majorPieces = []board.PieceType{board.Rook, board.Bishop}
var minorPieces = []board.PieceType{board.Silver, board.Gold, board.Knight}

// developmentBonus is the flat tapered bonus for a major/minor piece that has
// left its starting rank.
var developmentBonus = map[board.PieceType]TaperedScore{
	board.Rook:   {30, 5},
	board.Bishop: {30, 5},
	board.Silver: {15, 3},
	board.Gold:   {10, 3},
	board.Knight: {15, 3},
}

// onStartingRank reports whether sq is the rank on which a piece of type p
// and color c starts the game: the second rank for Rook and Bishop, the back
// rank for every other piece.
func onStartingRank(sq board.Square, c board.Color, p board.PieceType) bool {
	row := 8
	if c == board.White {
		row = 0
	}
	if p == board.Rook || p == board.Bishop {
		row += c.Forward()
	}
	return sq.Row() == row
}

func countDeveloped(b *board.Board, c board.Color, pieces []board.PieceType) int {
	n := 0
	for _, p := range pieces {
		it := bitboard.Bits(b.Piece(c, p))
		for {
			sq, ok := it.Next()
			if !ok {
				break
			}
			if !board.Square(sq).IsBackRank(c) {
				n++
			}
		}
	}
	return n
}

func (oe *Opening) development(b *board.Board, turn board.Color) TaperedScore {
	var total TaperedScore
	for _, c := range []board.Color{turn, turn.Opponent()} {
		sign := 1
		if c != turn {
			sign = -1
		}
		for _, p := range append(append([]board.PieceType{}, majorPieces...), minorPieces...) {
			it := bitboard.Bits(b.Piece(c, p))
			for {
				sq, ok := it.Next()
				if !ok {
					break
				}
				if !onStartingRank(board.Square(sq), c, p) {
					total = total.Add(developmentBonus[p].Scale(sign))
				}
			}
		}
	}
	return total
}

// openingCenterWeight is the opening-specific (heavier mg, lighter eg)
// per-piece-type center occupancy bonus.
var openingCenterWeight = map[board.PieceType]TaperedScore{
	board.Pawn:   {15, 2},
	board.Silver: {15, 3},
	board.Gold:   {10, 3},
	board.Knight: {15, 3},
	board.Bishop: {20, 4},
	board.Rook:   {15, 4},
}

func (oe *Opening) centerControl(b *board.Board, turn board.Color) TaperedScore {
	var total TaperedScore
	for _, c := range []board.Color{turn, turn.Opponent()} {
		sign := 1
		if c != turn {
			sign = -1
		}
		for p, w := range openingCenterWeight {
			it := bitboard.Bits(b.Piece(c, p))
			for {
				sq, ok := it.Next()
				if !ok {
					break
				}
				s := board.Square(sq)
				if inBox(s.Row(), s.Col(), 3, 5) {
					total = total.Add(w.Scale(sign))
				}
			}
		}
	}
	return total
}

// castleCornerBonus rewards a king that has moved away from the center file
// toward either edge file (0 or 8). The bonus is the same for both colors
// and does not depend on the king's row.
func castleCornerBonus(king board.Square, c board.Color) TaperedScore {
	col := king.Col()
	dist := col
	if col > 4 {
		dist = 8 - col
	}
	bonus := Score((4 - dist) * 8)
	return TaperedScore{MG: bonus, EG: bonus / 4}
}

var castleGuardWeight = TaperedScore{MG: 12, EG: 3}
var pawnShieldWeight = TaperedScore{MG: 10, EG: 2}

func (oe *Opening) castle(b *board.Board, turn board.Color) TaperedScore {
	var total TaperedScore
	for _, c := range []board.Color{turn, turn.Opponent()} {
		sign := 1
		if c != turn {
			sign = -1
		}
		if b.Piece(c, board.King).IsEmpty() {
			continue
		}
		king := b.KingSquare(c)
		total = total.Add(castleCornerBonus(king, c).Scale(sign))

		guards := 0
		for _, o := range []board.Offset{{0, -1}, {0, 1}, {-c.Forward(), 0}} {
			sq, ok := stepSquare(king, o.DR, o.DC)
			if !ok {
				continue
			}
			oc, p, ok := b.Square(sq)
			if ok && oc == c && (p == board.Gold || p == board.Silver) {
				guards++
			}
		}
		total = total.Add(castleGuardWeight.Scale(guards * sign))

		shields := 0
		for _, dc := range []int{-1, 0, 1} {
			sq, ok := stepSquare(king, c.Forward(), dc)
			if !ok {
				continue
			}
			oc, p, ok := b.Square(sq)
			if ok && oc == c && p == board.Pawn {
				shields++
			}
		}
		total = total.Add(pawnShieldWeight.Scale(shields * sign))
	}
	return total
}

func (oe *Opening) tempo(b *board.Board, turn board.Color) TaperedScore {
	base := TaperedScore{MG: 10, EG: 0}
	lead := countDeveloped(b, turn, append(append([]board.PieceType{}, majorPieces...), minorPieces...)) -
		countDeveloped(b, turn.Opponent(), append(append([]board.PieceType{}, majorPieces...), minorPieces...))
	leadBonus := TaperedScore{MG: Score(lead * 6), EG: Score(lead * 2)}
	return base.Add(leadBonus)
}

var undevelopedMajorPenalty = TaperedScore{MG: -12, EG: -2}
var kingSortiePenalty = TaperedScore{MG: -25, EG: -5}

// undevelopedMajorHorizon is how many moves a major piece is given before an
// undeveloped-major penalty kicks in -- looser than openingHorizon since
// majors often stay home intentionally while minors develop first.
const undevelopedMajorHorizon = 20

func (oe *Opening) penalties(b *board.Board, turn board.Color, moveCount int) TaperedScore {
	var total TaperedScore
	for _, c := range []board.Color{turn, turn.Opponent()} {
		sign := 1
		if c != turn {
			sign = -1
		}

		if moveCount >= undevelopedMajorHorizon {
			for _, p := range majorPieces {
				it := bitboard.Bits(b.Piece(c, p))
				for {
					sq, ok := it.Next()
					if !ok {
						break
					}
					if onStartingRank(board.Square(sq), c, p) {
						total = total.Add(undevelopedMajorPenalty.Scale(sign))
					}
				}
			}
		}

		if b.Piece(c, board.King).IsEmpty() {
			continue
		}
		king := b.KingSquare(c)
		if moveCount <= openingHorizon && !king.IsBackRank(c) {
			total = total.Add(kingSortiePenalty.Scale(sign))
		}
	}
	return total
}

// Evaluate sums the enabled opening sub-scores, faded by how far past the
// opening horizon moveCount has advanced.
func (oe *Opening) Evaluate(ctx context.Context, b *board.Board, hands [board.NumColors]board.Hand, turn board.Color, moveCount int) TaperedScore {
	w := openingWeight(moveCount)
	if w <= 0 {
		return TaperedScore{}
	}

	var total TaperedScore
	if oe.Config.EnableDevelopment {
		total = total.Add(oe.development(b, turn))
	}
	if oe.Config.EnableCenterControl {
		total = total.Add(oe.centerControl(b, turn))
	}
	if oe.Config.EnableCastle {
		total = total.Add(oe.castle(b, turn))
	}
	if oe.Config.EnableTempo {
		total = total.Add(oe.tempo(b, turn))
	}
	if oe.Config.EnablePenalties {
		total = total.Add(oe.penalties(b, turn, moveCount))
	}

	return TaperedScore{
		MG: Score(float64(total.MG) * w),
		EG: Score(float64(total.EG) * w),
	}
}
