package eval

import (
	"context"

	"github.com/komainu-shogi/shogicore/pkg/shogi/bitboard"
	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
)

// Tactical detects forks, pins, skewers, discovered attacks, and back-rank
// threats (§4.4.3). Each detector may be independently disabled.
type Tactical struct {
	Config Config
}

// NewTactical builds a Tactical evaluator with every detector enabled.
func NewTactical() *Tactical {
	return &Tactical{Config: DefaultConfig()}
}

// forkBonusFactor scales the sum of attacked piece values into a score; the
// knight-fork track uses a higher factor since shogi knight forks are
// notoriously hard to parry (a knight can never be captured by stepping
// backward onto it).
const (
	forkBonusFactor       = 0.08
	knightForkBonusFactor = 0.15
	kingInForkBonus       = Score(40)
)

func (te *Tactical) forks(b *board.Board, turn board.Color) TaperedScore {
	var total TaperedScore
	for _, c := range []board.Color{turn, turn.Opponent()} {
		sign := 1
		if c != turn {
			sign = -1
		}
		opp := c.Opponent()

		for p := board.ZeroPieceType; p < board.NumPieceTypes; p++ {
			it := bitboard.Bits(b.Piece(c, p))
			for {
				sq, ok := it.Next()
				if !ok {
					break
				}
				targets := b.AttacksFrom(board.Square(sq), c, p).And(b.ColorOccupied(opp))
				if targets.PopCount() < 2 {
					continue
				}

				sum := 0
				hitsKing := false
				tit := bitboard.Bits(targets)
				for {
					t, ok := tit.Next()
					if !ok {
						break
					}
					_, tp, _ := b.Square(board.Square(t))
					sum += NominalValue(tp)
					if tp == board.King {
						hitsKing = true
					}
				}

				factor := forkBonusFactor
				if p == board.Knight {
					factor = knightForkBonusFactor
				}
				bonus := Score(float64(sum) * factor)
				if hitsKing {
					bonus += kingInForkBonus
				}
				total = total.Add(TaperedScore{MG: bonus, EG: bonus}.Scale(sign))
			}
		}
	}
	return total
}

// pinPenaltyFactor scales a pinned piece's nominal value into a penalty.
const pinPenaltyFactor = 0.25

func (te *Tactical) pins(b *board.Board, turn board.Color) TaperedScore {
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

		for _, dirs := range [][]board.Direction{board.RookDirections(), board.BishopDirections()} {
			for _, d := range dirs {
				ray := b.RayAttacks(king, d.DR, d.DC)
				blockers := ray.And(b.Occupied())
				if blockers.PopCount() == 0 {
					continue
				}
				firstIdx, ok := bitboard.LSB(blockers).V()
				// RayAttacks ascends away from king in board-index order only
				// coincidentally; use MSB/LSB appropriately per direction sign.
				if d.DR < 0 || (d.DR == 0 && d.DC < 0) {
					firstIdx, ok = bitboard.MSB(blockers).V()
				}
				if !ok {
					continue
				}
				first := board.Square(firstIdx)
				fc, fp, _ := b.Square(first)
				if fc != c {
					continue
				}

				beyond := b.RayAttacks(first, d.DR, d.DC)
				var sliderMask bitboard.Bitboard
				if isOrthogonal(d) {
					sliderMask = b.Piece(opp, board.Rook).Or(b.Piece(opp, board.Lance)).Or(b.Piece(opp, board.PromotedRook))
				} else {
					sliderMask = b.Piece(opp, board.Bishop).Or(b.Piece(opp, board.PromotedBishop))
				}
				if beyond.And(sliderMask).IsEmpty() {
					continue
				}
				penalty := Score(float64(NominalValue(fp)) * pinPenaltyFactor)
				total = total.Sub(TaperedScore{MG: penalty, EG: penalty}.Scale(sign))
			}
		}
	}
	return total
}

func isOrthogonal(d board.Direction) bool {
	return d.DR == 0 || d.DC == 0
}

// skewerBonusFactor scales the value gap exposed by an X-ray skewer.
const skewerBonusFactor = 0.3

// skewers scores, for each side, the hazard of the OTHER side's slider
// x-raying through one of their own lower-value pieces onto a higher-value
// one -- i.e. an opportunity for the attacking side, charged against the
// side being skewered. Matches §4.4.3: "scored for the opponent's position".
func (te *Tactical) skewers(b *board.Board, turn board.Color) TaperedScore {
	var total TaperedScore
	for _, victim := range []board.Color{turn, turn.Opponent()} {
		sign := 1
		if victim != turn {
			sign = -1
		}
		attacker := victim.Opponent()

		for _, p := range []board.PieceType{board.Rook, board.Lance, board.Bishop, board.PromotedRook, board.PromotedBishop} {
			dirs := sliderDirections(p)
			if p == board.Lance {
				dirs = board.LanceDirections(attacker)
			}
			it := bitboard.Bits(b.Piece(attacker, p))
			for {
				sq, ok := it.Next()
				if !ok {
					break
				}
				from := board.Square(sq)
				for _, d := range dirs {
					// the two nearest pieces along this ray, in order; both
					// must belong to the victim
					ordered := orderedAlongRay(from, d, b.Occupied())
					if len(ordered) < 2 || !b.IsOccupiedBy(ordered[0], victim) || !b.IsOccupiedBy(ordered[1], victim) {
						continue
					}
					_, v1, _ := b.Square(ordered[0])
					_, v2, _ := b.Square(ordered[1])
					if NominalValue(v2) > NominalValue(v1) {
						bonus := Score(float64(NominalValue(v2)-NominalValue(v1)) * skewerBonusFactor)
						total = total.Sub(TaperedScore{MG: bonus, EG: bonus}.Scale(sign))
					}
				}
			}
		}
	}
	return total
}

func sliderDirections(p board.PieceType) []board.Direction {
	switch p {
	case board.Rook, board.PromotedRook:
		return board.RookDirections()
	case board.Lance:
		return nil // color-dependent: the caller uses board.LanceDirections
	default:
		return board.BishopDirections()
	}
}

// orderedAlongRay returns the squares of blockers nearest-first along the
// ray from origin in direction d.
func orderedAlongRay(origin board.Square, d board.Direction, blockers bitboard.Bitboard) []board.Square {
	var ordered []board.Square
	row, col := origin.Row(), origin.Col()
	for {
		row += d.DR
		col += d.DC
		if row < 0 || row > 8 || col < 0 || col > 8 {
			break
		}
		sq := board.NewSquare(row, col)
		if blockers.IsSet(int(sq)) {
			ordered = append(ordered, sq)
		}
	}
	return ordered
}

// discoveredAttacks scores a friendly sliding piece that would attack the
// enemy king the moment the friendly piece currently between them moves out
// of the way.
func (te *Tactical) discoveredAttacks(b *board.Board, turn board.Color) TaperedScore {
	var total TaperedScore
	for _, c := range []board.Color{turn, turn.Opponent()} {
		sign := 1
		if c != turn {
			sign = -1
		}
		opp := c.Opponent()
		if b.Piece(opp, board.King).IsEmpty() {
			continue
		}
		king := b.KingSquare(opp)

		for _, p := range []board.PieceType{board.Rook, board.Lance, board.Bishop, board.PromotedRook, board.PromotedBishop} {
			var dirSets [][]board.Direction
			switch p {
			case board.Rook, board.PromotedRook:
				dirSets = [][]board.Direction{board.RookDirections()}
			case board.Lance:
				dirSets = [][]board.Direction{{{c.Forward(), 0}}}
			default:
				dirSets = [][]board.Direction{board.BishopDirections()}
			}

			it := bitboard.Bits(b.Piece(c, p))
			for {
				sq, ok := it.Next()
				if !ok {
					break
				}
				from := board.Square(sq)
				for _, dirs := range dirSets {
					for _, d := range dirs {
						ray := b.RayAttacks(king, -d.DR, -d.DC)
						blockers := ray.And(b.Occupied())
						if blockers.PopCount() != 1 {
							continue
						}
						bit, ok := bitboard.LSB(blockers).V()
						if !ok {
							continue
						}
						blocker := board.Square(bit)
						if blocker == from {
							continue
						}
						bc, _, _ := b.Square(blocker)
						if bc != c {
							continue
						}
						// the slider must be the next piece beyond the blocker
						if !b.RayAttacks(blocker, -d.DR, -d.DC).IsSet(int(from)) {
							continue
						}
						total = total.Add(TaperedScore{MG: 25, EG: 15}.Scale(sign))
					}
				}
			}
		}
	}
	return total
}

// backRankPenalty is charged when a king sits on its home rank with no
// escape square while an enemy rook/dragon occupies that same rank.
var backRankPenalty = TaperedScore{MG: -80, EG: -40}

func (te *Tactical) backRankThreats(b *board.Board, turn board.Color) TaperedScore {
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
		if !king.IsBackRank(c) {
			continue
		}

		escapes := 0
		for _, o := range board.KingOffsets() {
			sq, ok := stepSquare(king, o.DR, o.DC)
			if !ok {
				continue
			}
			if b.IsOccupiedBy(sq, c) {
				continue
			}
			escapes++
		}
		if escapes > 0 {
			continue
		}

		opp := c.Opponent()
		rank := bitboard.RankMask(king.Row())
		enemyRooks := b.Piece(opp, board.Rook).Or(b.Piece(opp, board.PromotedRook))
		if rank.And(enemyRooks).IsEmpty() {
			continue
		}
		total = total.Add(backRankPenalty.Scale(sign))
	}
	return total
}

// Evaluate sums the enabled tactical detectors.
func (te *Tactical) Evaluate(ctx context.Context, b *board.Board, hands [board.NumColors]board.Hand, turn board.Color, moveCount int) TaperedScore {
	var total TaperedScore
	if te.Config.EnableForks {
		total = total.Add(te.forks(b, turn))
	}
	if te.Config.EnablePins {
		total = total.Add(te.pins(b, turn))
	}
	if te.Config.EnableSkewers {
		total = total.Add(te.skewers(b, turn))
	}
	if te.Config.EnableDiscoveredAttacks {
		total = total.Add(te.discoveredAttacks(b, turn))
	}
	if te.Config.EnableBackRankThreats {
		total = total.Add(te.backRankThreats(b, turn))
	}
	return total
}
