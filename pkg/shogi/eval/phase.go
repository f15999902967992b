package eval

import "github.com/komainu-shogi/shogicore/pkg/shogi/board"

// phaseWeight is the non-pawn/king material weight contributed by one piece
// of the given (unpromoted-equivalent) type. Two full armies sum to 30,
// which CalculateGamePhase scales to MaxPhase.
var phaseWeight = map[board.PieceType]int{
	board.Lance:  1,
	board.Knight: 1,
	board.Silver: 1,
	board.Gold:   2,
	board.Bishop: 2,
	board.Rook:   3,
}

// phaseWeightForPromoted lets a promoted piece still count toward phase
// using its base type's weight (a Dragon is still a Rook on the board).
func phaseWeightForPromoted(p board.PieceType) int {
	return phaseWeight[p.Unpromote()]
}

// CalculateGamePhase returns a value in [0, MaxPhase]: MaxPhase means both
// sides retain (close to) their full non-pawn/king material, 0 means a bare
// pawn-and-king endgame.
func CalculateGamePhase(b *board.Board) int {
	total := 0
	for c := board.ZeroColor; c < board.NumColors; c++ {
		for p := board.ZeroPieceType; p < board.NumPieceTypes; p++ {
			if p == board.Pawn || p == board.King {
				continue
			}
			total += b.Piece(c, p).PopCount() * phaseWeightForPromoted(p)
		}
	}

	phase := (total * MaxPhase) / 30
	if phase > MaxPhase {
		phase = MaxPhase
	}
	return phase
}
