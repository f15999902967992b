package eval

import (
	"context"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
)

// boardValue is the tapered (mg, eg) value of a piece sitting on the board.
var boardValue = map[board.PieceType]TaperedScore{
	board.Pawn:   {100, 120},
	board.Lance:  {300, 280},
	board.Knight: {350, 320},
	board.Silver: {450, 460},
	board.Gold:   {500, 520},
	board.Bishop: {800, 850},
	board.Rook:   {1000, 1100},
	board.King:   {20000, 20000},

	board.PromotedPawn:   {500, 550},
	board.PromotedLance:  {500, 540},
	board.PromotedKnight: {520, 550},
	board.PromotedSilver: {520, 550},
	board.PromotedBishop: {1200, 1300},
	board.PromotedRook:   {1400, 1550},
}

// handValue is the tapered value of a basic piece type sitting in a hand --
// slightly higher than its board value, the "drop flexibility premium": a
// piece in hand can be introduced on (almost) any empty square, a strictly
// more flexible asset than the same piece pinned to its current square.
// Promoted forms and the King can never be held in hand and have no entry
// (zero value).
var handValue = map[board.PieceType]TaperedScore{
	board.Pawn:   {110, 130},
	board.Lance:  {320, 300},
	board.Knight: {370, 350},
	board.Silver: {480, 490},
	board.Gold:   {530, 550},
	board.Bishop: {850, 920},
	board.Rook:   {1050, 1180},
}

// MaterialConfig toggles optional parts of the material evaluator.
type MaterialConfig struct {
	// IncludeHandPieces adds each side's held pieces to its material total.
	// Defaults to true; a specialized "board-only" evaluator can disable it.
	IncludeHandPieces bool
}

// DefaultMaterialConfig matches the reference implementation's defaults.
func DefaultMaterialConfig() MaterialConfig {
	return MaterialConfig{IncludeHandPieces: true}
}

// MaterialStats counts evaluator invocations, useful for profiling search
// hot paths the way the teacher's engine Options track node counts.
type MaterialStats struct {
	Evaluations uint64
}

// Material is the material-balance evaluator: board and (optionally) hand
// piece counts weighted by tapered value, own minus opponent.
type Material struct {
	Config MaterialConfig
	Stats  *MaterialStats
}

// NewMaterial constructs a Material evaluator with the default config and a
// fresh stats counter.
func NewMaterial() *Material {
	return &Material{Config: DefaultMaterialConfig(), Stats: &MaterialStats{}}
}

// Evaluate returns the material TaperedScore for turn: own total minus
// opponent total, over board pieces and (if enabled) hand pieces.
func (m *Material) Evaluate(ctx context.Context, b *board.Board, hands [board.NumColors]board.Hand, turn board.Color, moveCount int) TaperedScore {
	if m.Stats != nil {
		m.Stats.Evaluations++
	}

	opp := turn.Opponent()
	var total TaperedScore

	for p := board.ZeroPieceType; p < board.NumPieceTypes; p++ {
		v := boardValue[p]
		own := b.Piece(turn, p).PopCount()
		other := b.Piece(opp, p).PopCount()
		total = total.Add(v.Scale(own - other))
	}

	if m.Config.IncludeHandPieces {
		for _, p := range board.BasicPieceTypes {
			v := handValue[p]
			own := hands[turn].Count(p)
			other := hands[opp].Count(p)
			total = total.Add(v.Scale(own - other))
		}
	}

	return total
}

// NominalValue is the base, un-tapered value of a piece type, used by SEE
// and move ordering where a single position-independent magnitude is
// wanted rather than a full tapered pair.
func NominalValue(p board.PieceType) int {
	switch p {
	case board.Pawn:
		return 100
	case board.Lance:
		return 300
	case board.Knight:
		return 350
	case board.Silver:
		return 450
	case board.Gold:
		return 500
	case board.Bishop:
		return 800
	case board.Rook:
		return 1000
	case board.King:
		return 20000
	case board.PromotedPawn, board.PromotedLance, board.PromotedKnight, board.PromotedSilver:
		return 520
	case board.PromotedBishop:
		return 1200
	case board.PromotedRook:
		return 1400
	default:
		return 0
	}
}
