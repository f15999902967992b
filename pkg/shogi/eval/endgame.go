package eval

import (
	"context"

	"github.com/komainu-shogi/shogicore/pkg/shogi/bitboard"
	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
)

// EndgameConfig toggles the individual endgame-pattern sub-scores.
type EndgameConfig struct {
	EnableKingActivity       bool
	EnablePassedPawns        bool
	EnablePieceCoordination  bool
	EnableMatingPatterns     bool
	EnableMajorPieceActivity bool
}

// DefaultEndgameConfig enables every sub-score.
func DefaultEndgameConfig() EndgameConfig {
	return EndgameConfig{true, true, true, true, true}
}

// EndgameStats counts evaluator invocations.
type EndgameStats struct {
	Evaluations uint64
}

// Endgame scores king activity, passed pawns, piece coordination, mating
// patterns, and major-piece activity (§4.4.5). These patterns grow in
// weight as the phase falls toward 0; the tapered mg/eg split below is how
// that growth is expressed, not a separate phase gate.
type Endgame struct {
	Config EndgameConfig
	Stats  *EndgameStats
}

// NewEndgame builds an Endgame evaluator with every sub-score enabled.
func NewEndgame() *Endgame {
	return &Endgame{Config: DefaultEndgameConfig(), Stats: &EndgameStats{}}
}

func manhattan(a, b board.Square) int {
	dr := a.Row() - b.Row()
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col() - b.Col()
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

func distanceToCenter(sq board.Square) int {
	return manhattan(sq, board.NewSquare(4, 4))
}

// kingActivity rewards a centralized, advanced, off-back-rank king -- the
// defining endgame behavior change (the king becomes an attacker once mating
// material is scarce).
func (ee *Endgame) kingActivity(b *board.Board, c board.Color) TaperedScore {
	if b.Piece(c, board.King).IsEmpty() {
		return TaperedScore{}
	}
	king := b.KingSquare(c)

	dist := distanceToCenter(king)
	if dist > 4 {
		dist = 4
	}
	centralization := (4 - dist) * 15

	var mg, eg Score
	mg += Score(centralization / 4)
	eg += Score(centralization)

	if !king.IsBackRank(c) {
		mg += 5
		eg += 25
	}

	advanced := king.Row() <= 4
	if c == board.White {
		advanced = king.Row() >= 4
	}
	if advanced {
		mg += 5
		eg += 35
	}

	return TaperedScore{MG: mg, EG: eg}
}

// isPassedPawn reports whether the pawn of color c at sq has no enemy pawn
// on its own file or either adjacent file anywhere ahead of it.
func isPassedPawn(b *board.Board, sq board.Square, c board.Color) bool {
	opp := c.Opponent()
	enemyPawns := b.Piece(opp, board.Pawn)

	for _, dc := range []int{-1, 0, 1} {
		col := sq.Col() + dc
		if col < 0 || col > 8 {
			continue
		}
		row := sq.Row() + c.Forward()
		for row >= 0 && row <= 8 {
			check := board.NewSquare(row, col)
			if enemyPawns.IsSet(int(check)) {
				return false
			}
			row += c.Forward()
		}
	}
	return true
}

func (ee *Endgame) passedPawns(b *board.Board, c board.Color) TaperedScore {
	var mg, eg Score
	var king, oppKing board.Square
	haveKing := !b.Piece(c, board.King).IsEmpty()
	haveOppKing := !b.Piece(c.Opponent(), board.King).IsEmpty()
	if haveKing {
		king = b.KingSquare(c)
	}
	if haveOppKing {
		oppKing = b.KingSquare(c.Opponent())
	}

	it := bitboard.Bits(b.Piece(c, board.Pawn))
	for {
		idx, ok := it.Next()
		if !ok {
			break
		}
		sq := board.Square(idx)
		if !isPassedPawn(b, sq, c) {
			continue
		}

		advancement := 8 - sq.Row()
		if c == board.White {
			advancement = sq.Row()
		}
		mg += Score(advancement*advancement) * 8
		eg += Score(advancement*advancement) * 20

		if haveKing && manhattan(king, sq) <= 2 {
			eg += 40
		}
		if haveOppKing && manhattan(oppKing, sq) >= 4 {
			eg += 50
		}
	}
	return TaperedScore{MG: mg, EG: eg}
}

func findPieces(b *board.Board, c board.Color, p board.PieceType) []board.Square {
	var sqs []board.Square
	it := bitboard.Bits(b.Piece(c, p))
	for {
		idx, ok := it.Next()
		if !ok {
			break
		}
		sqs = append(sqs, board.Square(idx))
	}
	return sqs
}

func (ee *Endgame) pieceCoordination(b *board.Board, c board.Color) TaperedScore {
	var mg, eg Score

	rooks := findPieces(b, c, board.Rook)
	bishops := findPieces(b, c, board.Bishop)
	if len(rooks) > 0 && len(bishops) > 0 {
		coord := 0
		for _, r := range rooks {
			for _, bi := range bishops {
				if manhattan(r, bi) <= 4 {
					coord++
				}
			}
		}
		mg += Score(coord * 15)
		eg += Score(coord * 35)
	}

	if len(rooks) >= 2 {
		sameLine := false
		for i := 0; i < len(rooks) && !sameLine; i++ {
			for j := i + 1; j < len(rooks); j++ {
				if rooks[i].Row() == rooks[j].Row() || rooks[i].Col() == rooks[j].Col() {
					sameLine = true
					break
				}
			}
		}
		if sameLine {
			mg += 30
			eg += 60
		}
	}

	if !b.Piece(c.Opponent(), board.King).IsEmpty() {
		oppKing := b.KingSquare(c.Opponent())
		for _, p := range []board.PieceType{board.Rook, board.Bishop, board.PromotedRook, board.PromotedBishop} {
			for _, sq := range findPieces(b, c, p) {
				d := manhattan(sq, oppKing)
				if d <= 3 {
					bonus := (4 - d) * 20
					mg += Score(bonus / 2)
					eg += Score(bonus)
				}
			}
		}
	}

	return TaperedScore{MG: mg, EG: eg}
}

func escapeSquareCount(b *board.Board, king board.Square, c board.Color) int {
	count := 0
	for _, o := range board.KingOffsets() {
		sq, ok := stepSquare(king, o.DR, o.DC)
		if !ok {
			continue
		}
		if !b.IsOccupied(sq) || b.IsOccupiedBy(sq, c.Opponent()) {
			count++
		}
	}
	return count
}

func backRankMateThreat(b *board.Board, c board.Color) bool {
	if b.Piece(c, board.King).IsEmpty() {
		return false
	}
	king := b.KingSquare(c)
	if !king.IsBackRank(c) {
		return false
	}
	return escapeSquareCount(b, king, c) <= 2
}

func ladderMatePattern(b *board.Board, c board.Color) bool {
	if b.Piece(c.Opponent(), board.King).IsEmpty() {
		return false
	}
	oppKing := b.KingSquare(c.Opponent())

	for _, sq := range findPieces(b, c, board.Rook) {
		if sq.Col() == oppKing.Col() && (oppKing.Row() == 0 || oppKing.Row() == 8) {
			return true
		}
	}
	for _, sq := range findPieces(b, c, board.Lance) {
		if sq.Col() != oppKing.Col() {
			continue
		}
		pointingAtKing := sq.Row() > oppKing.Row()
		if c == board.White {
			pointingAtKing = sq.Row() < oppKing.Row()
		}
		if pointingAtKing && (oppKing.Row() == 0 || oppKing.Row() == 8) {
			return true
		}
	}
	return false
}

func bishopRookMatingNet(b *board.Board, c board.Color) bool {
	if b.Piece(c.Opponent(), board.King).IsEmpty() {
		return false
	}
	oppKing := b.KingSquare(c.Opponent())

	rooks := findPieces(b, c, board.Rook)
	bishops := findPieces(b, c, board.Bishop)
	if len(rooks) == 0 || len(bishops) == 0 {
		return false
	}

	onEdge := oppKing.Row() == 0 || oppKing.Row() == 8 || oppKing.Col() == 0 || oppKing.Col() == 8
	if !onEdge {
		return false
	}

	for _, r := range rooks {
		for _, bi := range bishops {
			if manhattan(r, oppKing) <= 3 && manhattan(bi, oppKing) <= 3 {
				return true
			}
		}
	}
	return false
}

func (ee *Endgame) matingPatterns(b *board.Board, c board.Color) TaperedScore {
	var mg, eg Score

	if backRankMateThreat(b, c.Opponent()) {
		mg += 50
		eg += 100
	}
	if ladderMatePattern(b, c) {
		eg += 80
	}
	if bishopRookMatingNet(b, c) {
		eg += 90
	}

	return TaperedScore{MG: mg, EG: eg}
}

func (ee *Endgame) majorPieceActivity(b *board.Board, c board.Color) TaperedScore {
	var mg, eg Score

	seventhRank := 1
	if c == board.White {
		seventhRank = 7
	}
	onSeventh := 0
	for _, sq := range findPieces(b, c, board.Rook) {
		if sq.Row() == seventhRank {
			onSeventh++
		}
	}
	mg += Score(onSeventh * 25)
	eg += Score(onSeventh * 50)

	onDiagonal := 0
	for _, sq := range findPieces(b, c, board.Bishop) {
		if sq.Row() == sq.Col() || sq.Row()+sq.Col() == 8 {
			onDiagonal++
		}
	}
	mg += Score(onDiagonal * 20)
	eg += Score(onDiagonal * 40)

	for _, p := range []board.PieceType{board.Rook, board.Bishop, board.PromotedRook, board.PromotedBishop} {
		for _, sq := range findPieces(b, c, p) {
			if inBox(sq.Row(), sq.Col(), 3, 5) {
				mg += 15
				eg += 30
			}
		}
	}

	return TaperedScore{MG: mg, EG: eg}
}

// Evaluate sums the enabled endgame sub-scores, own minus opponent.
func (ee *Endgame) Evaluate(ctx context.Context, b *board.Board, hands [board.NumColors]board.Hand, turn board.Color, moveCount int) TaperedScore {
	if ee.Stats != nil {
		ee.Stats.Evaluations++
	}

	var total TaperedScore
	for _, c := range []board.Color{turn, turn.Opponent()} {
		sign := 1
		if c != turn {
			sign = -1
		}

		var sub TaperedScore
		if ee.Config.EnableKingActivity {
			sub = sub.Add(ee.kingActivity(b, c))
		}
		if ee.Config.EnablePassedPawns {
			sub = sub.Add(ee.passedPawns(b, c))
		}
		if ee.Config.EnablePieceCoordination {
			sub = sub.Add(ee.pieceCoordination(b, c))
		}
		if ee.Config.EnableMatingPatterns {
			sub = sub.Add(ee.matingPatterns(b, c))
		}
		if ee.Config.EnableMajorPieceActivity {
			sub = sub.Add(ee.majorPieceActivity(b, c))
		}

		total = total.Add(sub.Scale(sign))
	}
	return total
}
