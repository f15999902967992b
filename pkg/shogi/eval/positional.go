package eval

import (
	"context"

	"github.com/komainu-shogi/shogicore/pkg/shogi/bitboard"
	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
)

// PositionalConfig toggles the individual positional sub-scores.
type PositionalConfig struct {
	EnableCenterControl bool
	EnableOutposts      bool
	EnableWeakSquares   bool
	EnableActivity      bool
	EnableSpace         bool
	EnableTempo         bool
}

// DefaultPositionalConfig enables every sub-score.
func DefaultPositionalConfig() PositionalConfig {
	return PositionalConfig{true, true, true, true, true, true}
}

// Positional scores center control, outposts, weak squares near the king,
// piece activity, space, and tempo (§4.4.2).
type Positional struct {
	Config PositionalConfig
}

// NewPositional builds a Positional evaluator with the default config.
func NewPositional() *Positional {
	return &Positional{Config: DefaultPositionalConfig()}
}

// centerWeight is the tapered bonus for a piece type occupying the 3x3 core
// center (rows 3..5, cols 3..5).
var centerWeight = map[board.PieceType]TaperedScore{
	board.Bishop: {35, 25},
	board.Knight: {30, 15},
	board.Silver: {20, 10},
	board.Gold:   {15, 10},
	board.Rook:   {20, 15},
	board.Pawn:   {10, 5},
}

// extendedCenterWeight is the (smaller) bonus for the 5x5 extended center
// (rows 2..6, cols 2..6) that is not already core center.
var extendedCenterWeight = map[board.PieceType]TaperedScore{
	board.Bishop: {15, 10},
	board.Knight: {12, 6},
	board.Silver: {10, 5},
	board.Gold:   {8, 5},
	board.Rook:   {10, 8},
}

func inBox(row, col, lo, hi int) bool {
	return row >= lo && row <= hi && col >= lo && col <= hi
}

func (pe *Positional) centerControl(b *board.Board, turn board.Color) TaperedScore {
	var total TaperedScore
	for _, c := range []board.Color{turn, turn.Opponent()} {
		sign := 1
		if c != turn {
			sign = -1
		}
		for p := board.ZeroPieceType; p < board.NumPieceTypes; p++ {
			it := bitboard.Bits(b.Piece(c, p))
			for {
				sq, ok := it.Next()
				if !ok {
					break
				}
				s := board.Square(sq)
				if inBox(s.Row(), s.Col(), 3, 5) {
					total = total.Add(centerWeight[p.Unpromote()].Scale(sign))
				} else if inBox(s.Row(), s.Col(), 2, 6) {
					total = total.Add(extendedCenterWeight[p.Unpromote()].Scale(sign))
				}
			}
		}
	}
	return total
}

// outpostWeight is the tapered value of a piece type sitting on a
// well-supported, unchallengeable outpost square.
var outpostWeight = map[board.PieceType]TaperedScore{
	board.Knight: {60, 40},
	board.Silver: {50, 45},
	board.Gold:   {45, 40},
}

func (pe *Positional) outposts(b *board.Board, turn board.Color) TaperedScore {
	var total TaperedScore
	for _, c := range []board.Color{turn, turn.Opponent()} {
		sign := 1
		if c != turn {
			sign = -1
		}
		opp := c.Opponent()

		for p, w := range outpostWeight {
			it := bitboard.Bits(b.Piece(c, p))
			for {
				sq, ok := it.Next()
				if !ok {
					break
				}
				s := board.Square(sq)
				if !isAdvanced(s, c) {
					continue
				}
				if !isPawnSupported(b, s, c) {
					continue
				}
				if isPawnChallengeable(b, s, c, opp) {
					continue
				}
				depthBonus := advancementDepth(s, c)
				total = total.Add(w.Scale(sign)).Add(TaperedScore{MG: Score(depthBonus), EG: Score(depthBonus)}.Scale(sign))
			}
		}
	}
	return total
}

// isAdvanced reports whether sq is on color's advanced half of the board:
// row <= 5 for Black, row >= 3 for White.
func isAdvanced(sq board.Square, c board.Color) bool {
	if c == board.Black {
		return sq.Row() <= 5
	}
	return sq.Row() >= 3
}

func advancementDepth(sq board.Square, c board.Color) int {
	if c == board.Black {
		return 8 - sq.Row()
	}
	return sq.Row()
}

// isPawnSupported reports whether a friendly pawn currently defends sq.
func isPawnSupported(b *board.Board, sq board.Square, c board.Color) bool {
	return b.AttackersTo(sq, c).And(b.Piece(c, board.Pawn)).PopCount() > 0
}

// isPawnChallengeable reports whether an enemy pawn could ever threaten sq:
// an enemy pawn anywhere on sq's file, on the enemy's side of sq.
func isPawnChallengeable(b *board.Board, sq board.Square, c, opp board.Color) bool {
	pawns := b.Piece(opp, board.Pawn)
	it := bitboard.Bits(pawns)
	for {
		idx, ok := it.Next()
		if !ok {
			return false
		}
		p := board.Square(idx)
		if p.Col() != sq.Col() {
			continue
		}
		if c == board.Black && p.Row() < sq.Row() {
			return true
		}
		if c == board.White && p.Row() > sq.Row() {
			return true
		}
	}
}

// weakSquarePenalty is charged per square near the king that no friendly
// pawn can ever defend and that the opponent already controls.
var weakSquarePenalty = TaperedScore{MG: -12, EG: -6}

func (pe *Positional) weakSquares(b *board.Board, turn board.Color) TaperedScore {
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
		opp := c.Opponent()

		for _, o := range board.KingOffsets() {
			sq, ok := stepSquare(king, o.DR, o.DC)
			if !ok {
				continue
			}
			if canFriendlyPawnReach(b, sq, c) {
				continue
			}
			if b.AttackersTo(sq, opp).PopCount() > 0 {
				total = total.Add(weakSquarePenalty.Scale(sign))
			}
		}
	}
	return total
}

// canFriendlyPawnReach reports whether color c still has an unpromoted pawn
// on sq's file positioned such that it could reach sq by advancing (i.e.
// has not already passed it).
func canFriendlyPawnReach(b *board.Board, sq board.Square, c board.Color) bool {
	pawns := b.Piece(c, board.Pawn)
	it := bitboard.Bits(pawns)
	for {
		idx, ok := it.Next()
		if !ok {
			return false
		}
		p := board.Square(idx)
		if p.Col() != sq.Col() {
			continue
		}
		if c == board.Black && p.Row() >= sq.Row() {
			return true
		}
		if c == board.White && p.Row() <= sq.Row() {
			return true
		}
	}
}

func stepSquare(sq board.Square, dr, dc int) (board.Square, bool) {
	row, col := sq.Row()+dr, sq.Col()+dc
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return 0, false
	}
	return board.NewSquare(row, col), true
}

// activityWeight scales a slider/minor's advancement-from-home distance
// into a tapered bonus.
var activityWeight = map[board.PieceType]TaperedScore{
	board.Rook:   {4, 2},
	board.Bishop: {4, 2},
	board.Lance:  {2, 1},
	board.Knight: {3, 1},
	board.Silver: {3, 2},
}

func (pe *Positional) activity(b *board.Board, turn board.Color) TaperedScore {
	var total TaperedScore
	for _, c := range []board.Color{turn, turn.Opponent()} {
		sign := 1
		if c != turn {
			sign = -1
		}
		for p, w := range activityWeight {
			it := bitboard.Bits(b.Piece(c, p))
			for {
				sq, ok := it.Next()
				if !ok {
					break
				}
				depth := advancementDepth(board.Square(sq), c)
				total = total.Add(w.Scale(depth).Scale(sign))
			}
		}
	}
	return total
}

func (pe *Positional) space(b *board.Board, turn board.Color) TaperedScore {
	own := controlledSquareCount(b, turn)
	opp := controlledSquareCount(b, turn.Opponent())
	diff := own - opp
	return TaperedScore{MG: Score(diff * 2), EG: Score(diff)}
}

func controlledSquareCount(b *board.Board, c board.Color) int {
	var controlled bitboard.Bitboard
	for p := board.ZeroPieceType; p < board.NumPieceTypes; p++ {
		it := bitboard.Bits(b.Piece(c, p))
		for {
			sq, ok := it.Next()
			if !ok {
				break
			}
			controlled = controlled.Or(b.AttacksFrom(board.Square(sq), c, p))
		}
	}
	return controlled.PopCount()
}

// tempoBonus is a flat premium for being the side to move.
const tempoBonus = Score(10)

func (pe *Positional) tempo(turn board.Color) TaperedScore {
	return TaperedScore{MG: tempoBonus, EG: tempoBonus / 2}
}

// Evaluate sums the enabled positional sub-scores.
func (pe *Positional) Evaluate(ctx context.Context, b *board.Board, hands [board.NumColors]board.Hand, turn board.Color, moveCount int) TaperedScore {
	var total TaperedScore
	if pe.Config.EnableCenterControl {
		total = total.Add(pe.centerControl(b, turn))
	}
	if pe.Config.EnableOutposts {
		total = total.Add(pe.outposts(b, turn))
	}
	if pe.Config.EnableWeakSquares {
		total = total.Add(pe.weakSquares(b, turn))
	}
	if pe.Config.EnableActivity {
		total = total.Add(pe.activity(b, turn))
	}
	if pe.Config.EnableSpace {
		total = total.Add(pe.space(b, turn))
	}
	if pe.Config.EnableTempo {
		total = total.Add(pe.tempo(turn))
	}
	return total
}
